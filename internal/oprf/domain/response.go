package domain

// Response status values. These are the only two statuses the protocol
// defines; failure responses carry no further detail.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Response is the transport-agnostic protocol response.
//
// A success response carries exactly one of mask or data as a
// single-element sequence of Base64 text; a failure response carries
// neither.
type Response struct {
	Status string   `json:"status"`
	Mask   []string `json:"mask,omitempty"`
	Data   []string `json:"data,omitempty"`
}

// NewMaskResponse builds a success response carrying one encoded mask token.
func NewMaskResponse(encodedToken string) Response {
	return Response{
		Status: StatusSuccess,
		Mask:   []string{encodedToken},
	}
}

// NewDataResponse builds a success response carrying one encoded masked data value.
func NewDataResponse(encodedData string) Response {
	return Response{
		Status: StatusSuccess,
		Data:   []string{encodedData},
	}
}

// NewFailureResponse builds the bare failure response. Every rejected or
// erroring request maps to this value, with no error detail exposed.
func NewFailureResponse() Response {
	return Response{Status: StatusFailure}
}
