package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "unknown metric",
		1013: "too many countries selected",
		1014: "invalid sort column or direction",

		1020: "reload records failed",
		1021: "records not loaded",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorUnknownMetric      = errorJSON(1012)
	errorTooManyCountries   = errorJSON(1013)
	errorInvalidSort        = errorJSON(1014)

	errorReloadFailed = errorJSON(1020)
	errorNotLoaded    = errorJSON(1021)
)

type ErrorResponse struct {
	Code    int64  `json:"code" msgpack:"code"`
	Message string `json:"message" msgpack:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
