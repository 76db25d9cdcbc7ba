package config

import (
	"fmt"

	"github.com/gonewx/starshooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SpawnRulesConfig 敌机生成与难度曲线配置
// 难度随分数阶梯式提升:每积累 ScoreStep 分,生成间隔缩短、敌机加速,
// 两条曲线分别受下限和上限约束,之后保持恒定
type SpawnRulesConfig struct {
	ScoreStep     int                `yaml:"scoreStep"`     // 每多少分提升一档难度
	SpawnInterval SpawnIntervalRules `yaml:"spawnInterval"` // 生成间隔曲线
	EnemySpeed    EnemySpeedRules    `yaml:"enemySpeed"`    // 敌机速度曲线
}

// SpawnIntervalRules 敌机生成间隔曲线(单位: 逻辑帧)
type SpawnIntervalRules struct {
	BaseTicks float64 `yaml:"baseTicks"` // 初始生成间隔
	StepTicks float64 `yaml:"stepTicks"` // 每档难度缩短的帧数
	MinTicks  float64 `yaml:"minTicks"`  // 间隔下限
}

// EnemySpeedRules 敌机下落速度曲线(单位: 像素/帧)
type EnemySpeedRules struct {
	Base float64 `yaml:"base"` // 初始速度
	Step float64 `yaml:"step"` // 每档难度增加的速度
	Max  float64 `yaml:"max"`  // 速度上限
}

// DefaultSpawnRules 返回内置的默认难度曲线
// 配置文件缺失或非法时使用,保证游戏总能开始
func DefaultSpawnRules() *SpawnRulesConfig {
	return &SpawnRulesConfig{
		ScoreStep: 100,
		SpawnInterval: SpawnIntervalRules{
			BaseTicks: 60,
			StepTicks: 5,
			MinTicks:  20,
		},
		EnemySpeed: EnemySpeedRules{
			Base: 2.0,
			Step: 0.25,
			Max:  6.0,
		},
	}
}

// LoadSpawnRules 从嵌入的 YAML 文件加载难度曲线配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file %s: %w", filePath, err)
	}

	config, err := parseSpawnRules(data)
	if err != nil {
		return nil, fmt.Errorf("invalid spawn rules config in %s: %w", filePath, err)
	}

	return config, nil
}

// parseSpawnRules 解析并验证 YAML 格式的难度曲线配置
func parseSpawnRules(data []byte) (*SpawnRulesConfig, error) {
	var config SpawnRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateSpawnRules 验证难度曲线配置的合法性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if config.ScoreStep < 1 {
		return fmt.Errorf("scoreStep must be at least 1, got %d", config.ScoreStep)
	}

	si := config.SpawnInterval
	if si.BaseTicks <= 0 {
		return fmt.Errorf("spawnInterval.baseTicks must be positive, got %v", si.BaseTicks)
	}
	if si.StepTicks < 0 {
		return fmt.Errorf("spawnInterval.stepTicks cannot be negative, got %v", si.StepTicks)
	}
	if si.MinTicks <= 0 {
		return fmt.Errorf("spawnInterval.minTicks must be positive, got %v", si.MinTicks)
	}
	if si.MinTicks > si.BaseTicks {
		return fmt.Errorf("spawnInterval.minTicks %v exceeds baseTicks %v", si.MinTicks, si.BaseTicks)
	}

	es := config.EnemySpeed
	if es.Base <= 0 {
		return fmt.Errorf("enemySpeed.base must be positive, got %v", es.Base)
	}
	if es.Step < 0 {
		return fmt.Errorf("enemySpeed.step cannot be negative, got %v", es.Step)
	}
	if es.Max < es.Base {
		return fmt.Errorf("enemySpeed.max %v is below base %v", es.Max, es.Base)
	}

	return nil
}

// difficultyLevel 根据当前分数计算难度档位
func (c *SpawnRulesConfig) difficultyLevel(score int) int {
	if score < 0 {
		return 0
	}
	return score / c.ScoreStep
}

// IntervalTicks 返回指定分数下的敌机生成间隔(逻辑帧)
// 间隔随难度档位线性缩短,不低于下限
func (c *SpawnRulesConfig) IntervalTicks(score int) float64 {
	interval := c.SpawnInterval.BaseTicks - float64(c.difficultyLevel(score))*c.SpawnInterval.StepTicks
	if interval < c.SpawnInterval.MinTicks {
		return c.SpawnInterval.MinTicks
	}
	return interval
}

// SpeedAt 返回指定分数下新生成敌机的下落速度(像素/帧)
// 速度随难度档位线性增加,不超过上限
func (c *SpawnRulesConfig) SpeedAt(score int) float64 {
	speed := c.EnemySpeed.Base + float64(c.difficultyLevel(score))*c.EnemySpeed.Step
	if speed > c.EnemySpeed.Max {
		return c.EnemySpeed.Max
	}
	return speed
}
