package ops

import "fmt"

// Kind tags the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	KindLeaf Kind = iota // no operation: inputs, constants and parameters
	KindAdd
	KindMul
	KindPow
	KindTanh
	KindReLU
	KindSigmoid
	KindExp
	KindLog
)

var kindNames = [...]string{
	KindLeaf:    "leaf",
	KindAdd:     "add",
	KindMul:     "mul",
	KindPow:     "pow",
	KindTanh:    "tanh",
	KindReLU:    "relu",
	KindSigmoid: "sigmoid",
	KindExp:     "exp",
	KindLog:     "log",
}

// String returns the lower-case operation name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}
