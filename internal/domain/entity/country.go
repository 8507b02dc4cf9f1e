package entity

// Country is a localized country entry used by address forms.
type Country struct {
	Code string `json:"code"` // ISO 3166-1 alpha-2 code.
	Name string `json:"name"` // Display name in the requested locale.
}
