package xoui

import (
	"bytes"
	_ "embed"
	"sync"
)

// defaultData 随包发布的注册表快照，可用 `ouictl convert` 从 IEEE oui.txt 重新生成
//
//go:embed data/oui.dat
var defaultData []byte

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(bytes.NewReader(defaultData))
})

// Default 返回内置注册表，首次调用时加载，之后复用同一实例
func Default() (*Registry, error) {
	return loadDefault()
}
