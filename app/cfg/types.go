package cfg

type Cfg struct {
	// Input and output
	Input     string
	OutputDir string
	Domain    string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
