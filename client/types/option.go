package types

// Option types back the select/multiSelect filter widgets: a display label
// plus the raw value the API filters on.

type OptionStr struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

type OptionInt struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type OptionBool struct {
	Text  string `json:"text"`
	Value bool   `json:"value"`
}
