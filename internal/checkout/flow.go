package checkout

import (
	"context"
	"fmt"
)

// FlowContext carries the state of one pipeline run: Input is what the
// caller supplied, Process is scratch space steps hand to each other, and
// Output is what the flow yields.
type FlowContext struct {
	Ctx     context.Context
	Input   map[string]any
	Process map[string]any
	Output  map[string]any
	Gateway BookingGateway
}

func NewFlowContext(ctx context.Context, input map[string]any, gw BookingGateway) *FlowContext {
	return &FlowContext{
		Ctx:     ctx,
		Input:   input,
		Process: make(map[string]any),
		Output:  make(map[string]any),
		Gateway: gw,
	}
}

type Step struct {
	Name    string
	Execute func(fc *FlowContext) error
}

func NewStep(name string, execute func(fc *FlowContext) error) *Step {
	return &Step{
		Name:    name,
		Execute: execute,
	}
}

type Flow struct {
	Name  string
	Steps []*Step
}

type Engine struct {
	flows map[string]*Flow
}

func NewEngine(flows ...*Flow) *Engine {
	m := map[string]*Flow{}
	for _, f := range flows {
		m[f.Name] = f
	}
	return &Engine{flows: m}
}

// Run executes the named flow step by step; the first failing step aborts
// the pipeline and its error carries the step name.
func (e *Engine) Run(flowName string, fc *FlowContext) error {
	f, exists := e.flows[flowName]
	if !exists {
		return fmt.Errorf("unsupported flow: %v", flowName)
	}
	for _, step := range f.Steps {
		if err := step.Execute(fc); err != nil {
			return fmt.Errorf("%s step failed: %w", step.Name, err)
		}
	}
	return nil
}
