package main

import (
	"errors"
	"fmt"
	"gridsheet/contracts"
	"strconv"
)

var EvaluationError = errors.New("evaluation error")

var CircularReferenceError = fmt.Errorf("%w: circular reference detected", EvaluationError)

var DivisionByZeroError = fmt.Errorf("%w: division by zero", EvaluationError)

var TypeMismatchError = fmt.Errorf("%w: text value used as number", EvaluationError)

// Display tags for evaluation failures. Stable: the UI layer and tests rely
// on the exact strings.
const (
	ParseErrorTag   = "#ERROR!"
	CycleErrorTag   = "#CYCLE!"
	TypeMismatchTag = "#VALUE!"
	DivideByZeroTag = "#DIV/0!"
)

// Evaluator resolves parsed cell values to display strings on demand. Nothing
// is cached between calls; every Evaluate re-reads referenced cells through
// the getter, so results are never stale. Cycle detection carries a set of
// positions on the active call chain, scoped to a single Evaluate.
type Evaluator struct {
	parser contracts.ExpressionParser
}

func NewEvaluator(parser contracts.ExpressionParser) *Evaluator {
	return &Evaluator{parser: parser}
}

func (e *Evaluator) Evaluate(position contracts.Position, rawText string, getter contracts.CellTextGetter) (string, error) {
	value, err := e.parser.Parse(rawText)
	if err != nil {
		return errorTag(err), err
	}

	switch value.Kind {
	case contracts.BlankValue:
		return "", nil
	case contracts.TextValue:
		return value.Text, nil
	case contracts.NumberValue:
		return formatNumber(value.Number), nil
	}

	visited := map[contracts.Position]bool{position: true}
	result, err := e.evalExpr(value.Expr, getter, visited)
	if err != nil {
		return errorTag(err), err
	}

	return formatNumber(result), nil
}

func (e *Evaluator) evalExpr(expr contracts.Expr, getter contracts.CellTextGetter, visited map[contracts.Position]bool) (float64, error) {
	switch node := expr.(type) {
	case contracts.NumberNode:
		return node.Value, nil

	case contracts.RefNode:
		return e.resolveRef(node.Position, getter, visited)

	case contracts.BinaryNode:
		left, err := e.evalExpr(node.Left, getter, visited)
		if err != nil {
			return 0, err
		}

		right, err := e.evalExpr(node.Right, getter, visited)
		if err != nil {
			return 0, err
		}

		switch node.Op {
		case contracts.OpAdd:
			return left + right, nil
		case contracts.OpSubtract:
			return left - right, nil
		case contracts.OpMultiply:
			return left * right, nil
		case contracts.OpDivide:
			if right == 0 {
				return 0, DivisionByZeroError
			}
			return left / right, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown expression node", EvaluationError)
}

// resolveRef dereferences one cell reference. Blank and unknown cells count
// as zero; text cells are not usable as numbers.
func (e *Evaluator) resolveRef(position contracts.Position, getter contracts.CellTextGetter, visited map[contracts.Position]bool) (float64, error) {
	if visited[position] {
		return 0, fmt.Errorf("%s: %w", position.Ref(), CircularReferenceError)
	}

	if getter == nil {
		return 0, nil
	}

	rawText := getter(position)
	if rawText == nil {
		return 0, nil
	}

	value, err := e.parser.Parse(*rawText)
	if err != nil {
		return 0, err
	}

	switch value.Kind {
	case contracts.BlankValue:
		return 0, nil
	case contracts.NumberValue:
		return value.Number, nil
	case contracts.TextValue:
		return 0, fmt.Errorf("%s: %w", position.Ref(), TypeMismatchError)
	}

	visited[position] = true
	result, err := e.evalExpr(value.Expr, getter, visited)
	delete(visited, position)

	return result, err
}

// formatNumber renders with the shortest decimal form that round-trips,
// never in exponent notation.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func errorTag(err error) string {
	switch {
	case errors.Is(err, CircularReferenceError):
		return CycleErrorTag
	case errors.Is(err, DivisionByZeroError):
		return DivideByZeroTag
	case errors.Is(err, TypeMismatchError):
		return TypeMismatchTag
	default:
		return ParseErrorTag
	}
}
