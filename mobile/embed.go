//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建移动端包之前需要先把根目录的 assets/ 和 data/ 复制到此目录，
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/resources.yaml data/spawn_rules.yaml
var dataFS embed.FS
