package bounded

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange 所有越界构造错误的哨兵值，可用 errors.Is 匹配
var ErrOutOfRange = errors.New("bounded: value out of range [0, 1]")

// OutOfRangeError 调用方试图用区间外的数构造 Unit
//
// 构造函数从不静默截断，越界值原样返回给调用方，
// 以便暴露产生越界值的上游缺陷。
type OutOfRangeError struct {
	Value float64 // 被拒绝的原始值
	Op    string  // 发生拒绝的构造入口
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bounded: %s: %v out of range [0, 1]", e.Op, e.Value)
}

// Is 使 errors.Is(err, ErrOutOfRange) 成立
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange[F Float](op string, v F) error {
	return errors.WithStack(&OutOfRangeError{Value: float64(v), Op: op})
}

// InvariantError 派生运算得到了区间外的结果
//
// 这代表运算公式本身存在缺陷而不是输入错误，只会以 panic 形式出现，
// 不会作为返回值交给调用方。
type InvariantError struct {
	Value float64
	Op    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bounded: invariant violated by %s: result %v outside [0, 1]", e.Op, e.Value)
}
