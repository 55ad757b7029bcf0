package errors

// User-friendly error messages
const (
	MsgUserNotFound         = "User not found."
	MsgPropertyNotFound     = "Property not found."
	MsgSubscriptionNotFound = "Subscription not found."
	MsgValidationFailed     = "The provided record is missing required fields or contains invalid values."
	MsgStoreUnavailable     = "We're unable to reach the database right now. Please try again in a few minutes."
	MsgUnauthorized         = "You must be signed in as an administrator to do that."
	MsgRateLimited          = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInternalError        = "Something went wrong on our end. Please try again later."
)
