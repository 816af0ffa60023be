package bounded

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/wildmap/bounded/xlog"
)

// checks 运行期开关，仅在默认构建(debugChecks为true)下生效
var checks = atomic.NewBool(true)

// SetChecks 运行期开启或关闭派生运算的区间校验
//
// 关闭后热路径上少一次比较，但公式缺陷产生的越界值不会再被捕获。
// 测试中应始终保持开启。以 bounded_release 标签构建时校验已被编译移除，
// 该开关不再起作用。New、FromRatio 等公开构造入口始终校验。
func SetChecks(on bool) {
	checks.Store(on)
}

// ChecksEnabled 返回派生运算的区间校验当前是否生效
func ChecksEnabled() bool {
	return debugChecks && checks.Load()
}

// checked 供可以证明结果不越界的内部运算使用的构造函数
// 校验开启时越界即视为程序缺陷：记录错误日志后panic
func checked[F Float](v F, op string) Unit[F] {
	if debugChecks && checks.Load() && !inRange(v) {
		violation(float64(v), op)
	}
	return Unit[F]{v: v}
}

func violation(v float64, op string) {
	err := &InvariantError{Value: v, Op: op}
	xlog.Named("bounded").Errorx("bounded invariant violated", zap.String("op", op), zap.Float64("value", v))
	panic(err)
}
