// Package main 帖子生成命令行入口
package main

import (
	"github.com/joho/godotenv"

	"postcraft/cmd/postgen-cli/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
