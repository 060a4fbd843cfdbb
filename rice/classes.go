// Package rice - rice variety classification on top of an inference engine.
package rice

// Classes is the fixed label table for the rice classifier.
//
// The order mirrors the training label order baked into the model artifact;
// the two must change in lockstep.
var Classes = []string{"Karacadag", "Ipsala", "Arborio", "Basmati", "Jasmine"}

// classIndex maps variety names to their positional index.
var classIndex = buildClassIndex()

func buildClassIndex() map[string]int {
	m := make(map[string]int, len(Classes))
	for i, name := range Classes {
		m[name] = i
	}
	return m
}

// ClassIndex returns the positional index for a variety name, or -1 if the
// name is not a known variety.
func ClassIndex(name string) int {
	if i, ok := classIndex[name]; ok {
		return i
	}
	return -1
}
