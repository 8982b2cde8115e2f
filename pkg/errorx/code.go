package errorx

type Code int

// Unknown is returned for unexpected storage failures. The message is kept
// generic so nothing about the persistence layer leaks to clients.
var Unknown = Error{Code: Internal, Message: "Database error"}

const (
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
)
