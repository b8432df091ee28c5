package domain

import "errors"

var ErrUnknownState = errors.New("no permit data for state")
var ErrEmptyRoute = errors.New("route has no states")
var ErrInvalidItem = errors.New("invalid load item")
var ErrEmptyCatalog = errors.New("truck catalog is empty")
var ErrNoReferenceData = errors.New("reference data is not loaded")
