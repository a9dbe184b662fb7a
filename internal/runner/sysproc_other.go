//go:build !unix

package runner

import "syscall"

func detachedAttr() *syscall.SysProcAttr {
	return nil
}
