package http

import (
	"embed"
	"html/template"
)

const (
	pageTemplate = "index.html"
	pageTitle    = "College Chatbot"
)

//go:embed templates/index.html
var templatesFS embed.FS

var page = template.Must(template.ParseFS(templatesFS, "templates/"+pageTemplate))

type homePage struct {
	Title    string
	Greeting string
}
