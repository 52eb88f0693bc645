package utils

import (
	"crypto/rand"
	mathrand "math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// 字符集常量
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// 全局原子计数器，用于确保生成的编号唯一
var codeCounter int64

// GenerateNodeID 生成分销节点ID
// 节点ID要求全局唯一且创建后稳定不变，使用UUID
func GenerateNodeID() string {
	return uuid.NewString()
}

// GenerateRandomCode 生成指定长度的随机字符码
func GenerateRandomCode(length int) string {
	code := make([]byte, length)

	// 使用安全的随机数生成
	_, err := rand.Read(code)
	if err != nil {
		// 如果安全随机数生成失败，回退到不安全的方法
		// 创建一个新的随机数生成器实例，而不是使用全局的Seed
		r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
		for i := range code {
			code[i] = charset[r.Intn(len(charset))]
		}
		return string(code)
	}

	// 将随机字节映射到字符集
	for i := range code {
		code[i] = charset[int(code[i])%len(charset)]
	}

	return string(code)
}

// GenerateOrderNo 生成订单号
// 使用原子计数器确保唯一性，附加4位随机字符增强唯一性
func GenerateOrderNo() string {
	counter := atomic.AddInt64(&codeCounter, 1)
	randomPart := GenerateRandomCode(4)
	return "DD" + strconv.FormatInt(time.Now().UnixNano(), 36) + strconv.FormatInt(counter, 36) + randomPart
}

// GenerateSettlementNo 生成对账单号
// 使用原子计数器确保唯一性，附加4位随机字符增强唯一性
func GenerateSettlementNo() string {
	counter := atomic.AddInt64(&codeCounter, 1)
	randomPart := GenerateRandomCode(4)
	return "JS" + strconv.FormatInt(time.Now().UnixNano(), 36) + strconv.FormatInt(counter, 36) + randomPart
}
