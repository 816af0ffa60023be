//go:build !bounded_release

package bounded

// debugChecks 默认构建下派生运算的结果都会经过区间校验
const debugChecks = true
