package domain

type CtxKey string

// Keys set on the gin context by the auth and request-id middleware.
const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)
