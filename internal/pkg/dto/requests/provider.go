package requests

type ProviderLogin struct {
	Code string `json:"code" validate:"max=64"`
}
