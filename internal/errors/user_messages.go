package errors

// User-facing error messages
const (
	MsgUnauthorized       = "Unauthorized"
	MsgAddressNotResolved = "Could not resolve an address using the given parameters. Please check the address and try again."
	MsgRateLimited        = "Too many requests. Please wait before retrying."
	MsgInternalError      = "An error occurred while looking up property details. Please try again later."
)
