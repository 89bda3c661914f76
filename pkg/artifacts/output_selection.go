package artifacts

// FileOutputSelection maps a contract name to the outputs requested for it.
// The empty contract name selects file level outputs such as the AST.
type FileOutputSelection map[string][]string

// OutputSelection maps a source file name to its FileOutputSelection. "*"
// matches every file or contract.
type OutputSelection map[string]FileOutputSelection

// DefaultFileOutputSelection returns the outputs requested for every file by default.
func DefaultFileOutputSelection() FileOutputSelection {
	return FileOutputSelection{
		"*": {
			"abi",
			"evm.bytecode",
			"evm.deployedBytecode",
			"evm.methodIdentifiers",
		},
		"": {"ast"},
	}
}

// DefaultOutputSelection returns the standard selection applied to all files.
// Each call returns a fresh value.
func DefaultOutputSelection() OutputSelection {
	return OutputSelection{"*": DefaultFileOutputSelection()}
}
