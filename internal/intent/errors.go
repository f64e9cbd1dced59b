package intent

import "errors"

var (
	ErrEmptyTag          = errors.New("intent tag is empty")
	ErrDuplicateTag      = errors.New("duplicate intent tag")
	ErrEmptyCatalog      = errors.New("intent catalog has no intents")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
