// 资源表自检工具
// 在仓库根目录运行: go run ./cmd/check_resources
//
// 校验 data/resources.yaml 与 data/spawn_rules.yaml 的格式,
// 并逐一检查资源表引用的素材文件是否存在于 assets/ 目录。
// 素材缺失只是警告(游戏运行时会降级为占位资源),配置表损坏则以非零退出。
package main

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/starshooter/pkg/config"
	"github.com/gonewx/starshooter/pkg/game"
)

func main() {
	errors := 0
	missing := 0

	errors += checkResourceTable(&missing)
	errors += checkSpawnRules()

	fmt.Println()
	if errors > 0 {
		fmt.Printf("❌ 发现 %d 处配置错误\n", errors)
		os.Exit(1)
	}
	if missing > 0 {
		fmt.Printf("⚠️  配置表正确,%d 个素材文件缺失(运行时将使用占位资源)\n", missing)
		return
	}
	fmt.Println("✅ 配置表正确,所有素材文件就绪")
}

// checkResourceTable 校验资源表并检查引用的素材文件,返回错误数
func checkResourceTable(missing *int) int {
	data, err := os.ReadFile("data/resources.yaml")
	if err != nil {
		fmt.Printf("❌ 读取 data/resources.yaml 失败: %v\n", err)
		return 1
	}

	var cfg game.ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Printf("❌ data/resources.yaml 解析失败: %v\n", err)
		return 1
	}

	fmt.Printf("✅ resources.yaml 格式正确 (version %s, base_path %s)\n", cfg.Version, cfg.BasePath)
	fmt.Printf("✅ 图片 %d 项, 音效 %d 项, 音乐 %d 项, 字体 %d 项\n",
		len(cfg.Images), len(cfg.Sounds), len(cfg.Music), len(cfg.Fonts))

	errors := 0
	seen := make(map[string]bool)
	check := func(kind, id, path string) {
		if id == "" {
			fmt.Printf("❌ %s 条目缺少 id (path: %s)\n", kind, path)
			errors++
			return
		}
		if seen[id] {
			fmt.Printf("❌ 重复的资源 ID: %s\n", id)
			errors++
			return
		}
		seen[id] = true
		if path == "" {
			fmt.Printf("❌ %s 缺少 path\n", id)
			errors++
			return
		}

		fullPath := filepath.Join(cfg.BasePath, filepath.FromSlash(path))
		fileData, err := os.ReadFile(fullPath)
		if err != nil {
			fmt.Printf("⚠️  %-24s %s 缺失\n", id, fullPath)
			*missing++
			return
		}
		fmt.Printf("   %-24s %s (%d bytes, md5 %x)\n", id, fullPath, len(fileData), md5.Sum(fileData))
	}

	for _, img := range cfg.Images {
		check("图片", img.ID, img.Path)
	}
	for _, snd := range cfg.Sounds {
		check("音效", snd.ID, snd.Path)
		if snd.Gain < 0 {
			fmt.Printf("❌ %s 的 gain 为负数: %v\n", snd.ID, snd.Gain)
			errors++
		}
	}
	for _, m := range cfg.Music {
		check("音乐", m.ID, m.Path)
	}
	for _, f := range cfg.Fonts {
		check("字体", f.ID, f.Path)
	}

	return errors
}

// checkSpawnRules 校验难度曲线配置,返回错误数
func checkSpawnRules() int {
	data, err := os.ReadFile("data/spawn_rules.yaml")
	if err != nil {
		fmt.Printf("❌ 读取 data/spawn_rules.yaml 失败: %v\n", err)
		return 1
	}

	var rules config.SpawnRulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		fmt.Printf("❌ data/spawn_rules.yaml 解析失败: %v\n", err)
		return 1
	}

	errors := 0
	if rules.ScoreStep < 1 {
		fmt.Printf("❌ scoreStep 必须至少为 1, 当前: %d\n", rules.ScoreStep)
		errors++
	}
	if rules.SpawnInterval.MinTicks <= 0 || rules.SpawnInterval.MinTicks > rules.SpawnInterval.BaseTicks {
		fmt.Printf("❌ 生成间隔曲线非法: base %v, min %v\n",
			rules.SpawnInterval.BaseTicks, rules.SpawnInterval.MinTicks)
		errors++
	}
	if rules.EnemySpeed.Base <= 0 || rules.EnemySpeed.Max < rules.EnemySpeed.Base {
		fmt.Printf("❌ 敌机速度曲线非法: base %v, max %v\n",
			rules.EnemySpeed.Base, rules.EnemySpeed.Max)
		errors++
	}

	if errors == 0 {
		fmt.Printf("✅ spawn_rules.yaml 格式正确 (每 %d 分提升一档难度)\n", rules.ScoreStep)
	}
	return errors
}
