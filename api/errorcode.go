package api

import "github.com/helperlink/helperlink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid authorization format",
		1001: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "invalid credentials",

		1200: store.ErrRequestNotFound.Error(),

		1300: store.ErrProfileNotFound.Error(),
		1301: store.ErrProfileExists.Error(),
		1302: store.ErrSkillAlreadyAdded.Error(),
		1303: store.ErrInvalidSkillRefs.Error(),
		1304: store.ErrAllUsersProfiled.Error(),
		1305: store.ErrNoSkills.Error(),

		1400: store.ErrSkillNotFound.Error(),
		1401: store.ErrCategoryNotFound.Error(),
		1402: store.ErrSlugTaken.Error(),

		1500: store.ErrAreaExists.Error(),
		1501: store.ErrAreaNotFound.Error(),

		1600: store.ErrThreadNotFound.Error(),
		1601: store.ErrNotParticipant.Error(),
		1602: store.ErrInvalidThreadKey.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1000)
	errorInvalidToken               = errorJSON(1001)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)

	errorProfileNotFound   = errorJSON(1300)
	errorProfileExists     = errorJSON(1301)
	errorSkillAlreadyAdded = errorJSON(1302)
	errorInvalidSkillRefs  = errorJSON(1303)
	errorAllUsersProfiled  = errorJSON(1304)
	errorNoSkills          = errorJSON(1305)

	errorSkillNotFound    = errorJSON(1400)
	errorCategoryNotFound = errorJSON(1401)
	errorSlugTaken        = errorJSON(1402)

	errorAreaExists   = errorJSON(1500)
	errorAreaNotFound = errorJSON(1501)

	errorThreadNotFound   = errorJSON(1600)
	errorNotParticipant   = errorJSON(1601)
	errorInvalidThreadKey = errorJSON(1602)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
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
