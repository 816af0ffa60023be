//go:build bounded_release

package bounded

// debugChecks 使用 -tags bounded_release 构建时为常量false，
// 编译器会直接移除派生运算中的区间校验。
//
// 代价：公式缺陷导致的越界值不再被发现，会一直传播到调用方。
// 公开的 New 构造函数不受影响，仍然总是校验。
const debugChecks = false
