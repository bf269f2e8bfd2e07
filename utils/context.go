package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// GetUid 从上下文取当前用户ID，由JWT中间件写入
func GetUid(c *gin.Context) (int, error) {
	value, exists := c.Get("uid")
	if !exists {
		return 0, errors.New("上下文中缺少用户ID")
	}
	uid, ok := value.(int)
	if !ok {
		return 0, errors.New("用户ID格式错误")
	}
	return uid, nil
}

// GetRole 从上下文取当前用户角色
func GetRole(c *gin.Context) (string, error) {
	value, exists := c.Get("role")
	if !exists {
		return "", errors.New("上下文中缺少角色信息")
	}
	role, ok := value.(string)
	if !ok {
		return "", errors.New("角色信息格式错误")
	}
	return role, nil
}
