package artifacts

// OptimizerDetails switches individual optimizer components on or off.
// Unset fields leave the compiler's own default in place.
type OptimizerDetails struct {
	Peephole          *bool       `json:"peephole,omitempty"`
	Inliner           *bool       `json:"inliner,omitempty"`
	JumpdestRemover   *bool       `json:"jumpdestRemover,omitempty"`
	OrderLiterals     *bool       `json:"orderLiterals,omitempty"`
	Deduplicate       *bool       `json:"deduplicate,omitempty"`
	CSE               *bool       `json:"cse,omitempty"`
	ConstantOptimizer *bool       `json:"constantOptimizer,omitempty"`
	Yul               *bool       `json:"yul,omitempty"`
	YulDetails        *YulDetails `json:"yulDetails,omitempty"`

	SimpleCounterForLoopUncheckedIncrement *bool `json:"simpleCounterForLoopUncheckedIncrement,omitempty"`
}

// YulDetails tunes the Yul optimizer.
type YulDetails struct {
	StackAllocation *bool  `json:"stackAllocation,omitempty"`
	OptimizerSteps  string `json:"optimizerSteps,omitempty"`
}
