package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Frame is one entry of a stack trace.
type Frame struct {
	Function eventschema.Annotated[eventschema.String] `json:"function"`
	Module   eventschema.Annotated[eventschema.String] `json:"module"`
	Filename eventschema.Annotated[eventschema.String] `json:"filename"`
	AbsPath  eventschema.Annotated[eventschema.String] `json:"abs_path"`
	Lineno   eventschema.Annotated[eventschema.Uint64] `json:"lineno"`
	Colno    eventschema.Annotated[eventschema.Uint64] `json:"colno"`
	InApp    eventschema.Annotated[eventschema.Bool]   `json:"in_app"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (f *Frame) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (f *Frame) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if fp, ok := p.(FrameProcessor); ok {
		return fp.ProcessFrame(f, meta, state)
	}
	return f.AcceptChildren(p, state)
}

func (f *Frame) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processField(&f.Function, p, state, "function", frameAttrs); err != nil {
		return err
	}
	if err := processField(&f.Module, p, state, "module", frameAttrs); err != nil {
		return err
	}
	if err := processField(&f.Filename, p, state, "filename", frameAttrs); err != nil {
		return err
	}
	if err := processField(&f.AbsPath, p, state, "abs_path", frameAttrs); err != nil {
		return err
	}
	if err := processField(&f.Lineno, p, state, "lineno", nil); err != nil {
		return err
	}
	if err := processField(&f.Colno, p, state, "colno", nil); err != nil {
		return err
	}
	if err := processField(&f.InApp, p, state, "in_app", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(f.Other, p, state)
}

// Stacktrace is an ordered list of frames, oldest first.
type Stacktrace struct {
	Frames eventschema.Annotated[eventschema.Array[Frame]] `json:"frames"`

	Other *eventschema.Map[eventschema.Value] `json:"-"`
}

func (s *Stacktrace) ValueTypes() eventschema.ValueTypeSet { return eventschema.ObjectType }

func (s *Stacktrace) Accept(meta *eventschema.Meta, p eventschema.Processor, state *eventschema.ProcessingState) error {
	if sp, ok := p.(StacktraceProcessor); ok {
		return sp.ProcessStacktrace(s, meta, state)
	}
	return s.AcceptChildren(p, state)
}

func (s *Stacktrace) AcceptChildren(p eventschema.Processor, state *eventschema.ProcessingState) error {
	if err := processArrayField[Frame](&s.Frames, p, state, "frames", nil); err != nil {
		return err
	}
	return eventschema.ProcessOther(s.Other, p, state)
}
