//go:build mage

// Package main listkeeper 的 Mage 构建目标
//
// 用法：
//
//	mage build     编译 server 与 listkeeper 到 bin/
//	mage test      运行全部测试
//	mage lint      运行 golangci-lint
//	mage wire      重新生成 wire_gen.go
//	mage swagger   重新生成 docs/
//	mage clean     删除构建产物
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryDir = "bin"

// binaries 输出名 -> main 包
var binaries = map[string]string{
	"listkeeper-server": "./cmd/server",
	"listkeeper":        "./cmd/listkeeper",
}

// Build 编译所有二进制到 bin/
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	for name, pkg := range binaries {
		if err := sh.RunV("go", "build", "-o", filepath.Join(binaryDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test 运行全部测试
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint 运行 golangci-lint
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Wire 重新生成依赖注入代码
func Wire() error {
	return sh.RunV("go", "run", "github.com/google/wire/cmd/wire", "./internal/wire")
}

// Swagger 重新生成 API 文档
func Swagger() error {
	return sh.RunV("go", "run", "github.com/swaggo/swag/cmd/swag", "init",
		"-g", "cmd/server/main.go",
		"-o", "docs",
	)
}

// Generate 运行全部代码生成
func Generate() {
	mg.SerialDeps(Wire, Swagger)
}

// Clean 删除构建产物
func Clean() error {
	return os.RemoveAll(binaryDir)
}
