package policy

// Keyboard walks and ordered character runs that candidates are checked
// against when no custom sequence list is configured.
var defaultSequences = []string{
	"0123456789",
	"`1234567890-=",
	"~!@#$%^&*()_+",
	"abcdefghijklmnopqrstuvwxyz",
	`qwertyuiop[]\asdfghjkl;'zxcvbnm,./`,
	`qwertyuiop{}|asdfghjkl;"zxcvbnm<>?`,
	"qwertyuiopasdfghjklzxcvbnm",
	`1qaz2wsx3edc4rfv5tgb6yhn7ujm8ik,9ol.0p;/-['=]\`,
	"qazwsxedcrfvtgbyhnujmikolp",
}

// DefaultSequences returns a copy of the built-in common-sequence table.
func DefaultSequences() []string {
	sequences := make([]string, len(defaultSequences))
	copy(sequences, defaultSequences)
	return sequences
}
