// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// 下面几个结构体对应 config.yaml 里面的同名节点，由 ioc 通过 econf 读取

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type SessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	Cookie              struct {
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
}

type MySQLConfig struct {
	DSN  string          `yaml:"dsn"`
	Ping MySQLPingConfig `yaml:"ping"`
}

// MySQLPingConfig 启动时等待数据库可用的退避参数，单位毫秒
type MySQLPingConfig struct {
	InitialMillis int64 `yaml:"initialMillis"`
	MaxMillis     int64 `yaml:"maxMillis"`
	TimeoutMillis int64 `yaml:"timeoutMillis"`
	Retries       int32 `yaml:"retries"`
}
