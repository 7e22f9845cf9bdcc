package logger

import "errors"

var (
	// ErrServiceNameIsEmpty error if the log config carries no service name.
	ErrServiceNameIsEmpty = errors.New("log config servicename can not be empty")

	// ErrAppNameIsEmpty error if the log config carries no app name.
	ErrAppNameIsEmpty = errors.New("log config appname can not be empty")
)
