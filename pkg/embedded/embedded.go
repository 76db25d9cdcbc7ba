// Package embedded 提供嵌入资源的统一访问接口
//
// Go 的 embed 指令只能嵌入声明文件所在目录及其子目录的内容,
// 因此 embed.FS 变量声明在项目根目录的 embed.go 中,
// 由 main() 在启动时通过 Init() 注入本包。
// 其余包一律通过本包的包装函数按路径前缀访问嵌入资源。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	dataFS      embed.FS
	initialized bool
)

// Init 注入根目录声明的 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data embed.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回本包是否已通过 Init() 初始化
func IsInitialized() bool {
	return initialized
}

// resolve 规范化路径并根据前缀选出对应的 embed.FS
// 路径必须以 "assets/" 或 "data/" 开头
func resolve(path string) (*embed.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠,统一分隔符并去掉可能的 "./" 前缀
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return &assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return &dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	fsys, resolved, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(resolved)
}

// ReadFile 读取嵌入文件的全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, resolved, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, resolved)
}

// Exists 检查嵌入文件是否存在
// 未初始化或路径前缀非法时一律返回 false
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
