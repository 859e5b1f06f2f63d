package export

// Config holds the pipeline directories and codegen settings.
type Config struct {
	// InputDir is the directory scanned for .xlsx workbooks.
	InputDir string `mapstructure:"input_dir" default:"DataTables"`
	// DataDir is where the JSON documents are written.
	DataDir string `mapstructure:"data_dir" default:"GamePro/Assets/Resources/ExcelImporter"`
	// CodeDir is where the generated C# sources are written.
	CodeDir string `mapstructure:"code_dir" default:"GamePro/Assets/Code/ExcelImporter"`
	// Namespace is the C# namespace of the generated code.
	Namespace string `mapstructure:"namespace" default:"ExcelImporter"`
}
