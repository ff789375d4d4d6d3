package constvars

const (
	URLParamStep      = "step"
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamCategory = "category"
)

const (
	FormFieldFrontPhoto = "front"
	FormFieldSidePhoto  = "side"
)
