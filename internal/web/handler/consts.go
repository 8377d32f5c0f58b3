package handler

import "errors"

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath prefixes the JSON endpoints.
	APIPath = RootPath + "api/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// ErrNilACD is returned by Init if app, cfg or db is nil.
var ErrNilACD = errors.New(ErrNilACDFatalLogMsg)
