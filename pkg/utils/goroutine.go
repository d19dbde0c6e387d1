package utils

import (
	"runtime/debug"

	"go.uber.org/zap"

	"yqhp/minbench/pkg/logger"
)

// SafeGo 安全地启动一个带名称的 goroutine，捕获 panic 并记录日志
// onPanic 可为 nil；非 nil 时在记录日志后调用
// 使用方式: utils.SafeGo("worker-3", func() { ... }, func(r any) { ... })
func SafeGo(name string, fn func(), onPanic func(r any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("goroutine panic recovered",
					zap.String("goroutine", name),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				if onPanic != nil {
					onPanic(r)
				}
			}
		}()
		fn()
	}()
}
