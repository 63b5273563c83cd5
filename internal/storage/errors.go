package storage

import "errors"

var (
	ErrUnknownDataSource = errors.New("unknown data source")
	ErrUnknownField      = errors.New("field is not in the catalog of the data source")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrTemplateNotFound  = errors.New("report template not found")
	ErrProposalNotFound  = errors.New("proposal not found")
)
