package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/tsinghua-fib-lab/simrand-oss/random"
	"github.com/tsinghua-fib-lab/simrand-oss/utils/config"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "simrand")
)

// newSampler 根据配置创建采样器
// 说明：native后端只产生标记源，任何直接抽样都会失败并提示交由宿主引擎处理
func newSampler(rng config.RNG) (*random.Sampler, error) {
	cfg := random.Config{
		Seed:         rng.Seed,
		ParallelSafe: rng.ParallelSafe,
		Rank:         rng.Rank,
		WorldSize:    rng.WorldSize,
	}
	switch rng.Backend {
	case "software":
		return random.NewSoftwareSampler(cfg), nil
	case "library":
		return random.NewLibrarySampler(rng.Algorithm, cfg)
	case "native":
		return random.NewSampler(random.NewNativeSource(cfg), cfg), nil
	default:
		return nil, fmt.Errorf("unknown rng backend %q (available: software library native)", rng.Backend)
	}
}

// drawMask 根据抽样请求构造掩码
func drawMask(d config.Draw) random.Mask {
	if len(d.Mask) > 0 {
		return random.BoolMask(d.Mask)
	}
	if len(d.Indices) > 0 {
		return random.IndexMask(d.Indices)
	}
	return nil
}

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var c config.Config
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	} else {
		log.Panic("config file or config data must be specified")
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Panicf("config file load err: %v", err)
	}
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		log.Panicf("config check err: %v", err)
	}
	log.Infof("%+v", rc.All)

	sampler, err := newSampler(rc.RNG)
	if err != nil {
		log.Panicf("sampler init err: %v", err)
	}
	log.Infof("job %s: %s", rc.All.Job, sampler.Describe())

	for i, d := range rc.All.Draws {
		rd, err := random.NewDistribution(d.Distribution, sampler, random.Parameters(d.Parameters))
		if err != nil {
			log.Panicf("draws[%d] init err: %v", i, err)
		}
		mask := drawMask(d)
		if len(d.Shape) > 0 {
			arr, err := rd.LazilyEvaluate(mask, d.Shape)
			if err != nil {
				log.Panicf("draws[%d] evaluate err: %v", i, err)
			}
			fmt.Printf("%s shape=%v %v\n", d.Distribution, arr.Shape, arr.Data)
			continue
		}
		values, err := rd.Next(d.N, mask)
		if err != nil {
			log.Panicf("draws[%d] draw err: %v", i, err)
		}
		fmt.Printf("%s %v\n", d.Distribution, values)
	}
}
