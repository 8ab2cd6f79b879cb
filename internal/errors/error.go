package errors

// ErrorUnknown is returned to API clients in place of server errors.
type ErrorUnknown struct{}

func (eu *ErrorUnknown) Error() string {
	return "something went wrong, please try again later"
}
