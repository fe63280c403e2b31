package ioc

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var validate = validator.New()

// InitViper 解析命令行, 读取配置文件和环境变量.
// usage: fxsignal [options] [live]
func InitViper() {
	// .env 可选
	_ = godotenv.Load()

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	noNotify := pflag.BoolP("disable-notifications", "n", false, "Disable notifications")
	delay := pflag.IntP("delay", "d", 0, "Delay in second to check new signals")
	pflag.Parse()

	viper.SetEnvPrefix("FXSIGNAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(*file)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("fatal error config file: %s \n", err))
		}
		slog.Warn("config file not found, using defaults", "file", *file)
	}

	if *delay > 0 {
		viper.Set("poll.delay", time.Duration(*delay)*time.Second)
	}
	if *noNotify {
		viper.Set("notify.enabled", false)
	}
	if slices.Contains(pflag.Args(), "live") {
		viper.Set("poll.live", true)
	}
}

// unmarshalKey 先填默认值, 再用配置覆盖, 最后校验.
// viper.Set 覆盖子 key 后直接 UnmarshalKey 父 key 会丢掉配置文件中的其他字段,
// 所以先用 AllSettings 合并出完整的配置.
func unmarshalKey(key string, cfg any) {
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	merged := viper.New()
	if err := merged.MergeConfigMap(viper.AllSettings()); err != nil {
		panic(err)
	}
	if err := merged.UnmarshalKey(key, cfg); err != nil {
		panic(err)
	}
	if err := validate.Struct(cfg); err != nil {
		panic(fmt.Errorf("invalid %s config: %w", key, err))
	}
}
