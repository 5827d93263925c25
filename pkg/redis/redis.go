/*
Package redis 封装go-redis客户端, 提供容量缓存与分布式锁使用的基础能力.
*/
package redis

import (
	"strings"
	"time"

	"github.com/go-redis/redis"
)

type _client struct {
	cli *redis.Client
}

var clientMap map[string]_client

func init() {
	clientMap = make(map[string]_client)
	Init("default", "127.0.0.1:6379", "")
}

// Init 初始化指定名称的redis连接. 连接失败时该名称不可用, 调用方需自行降级.
func Init(dbName string, host string, password string) error {
	hostSlice := strings.Split(host, ",")
	client := redis.NewClient(&redis.Options{
		Addr:     hostSlice[0],
		Password: password,
		DB:       0,
	})
	_, err := client.Ping().Result()
	if err != nil {
		return err
	}
	clientMap[dbName] = _client{cli: client}
	return nil
}

// Handler redis操作句柄.
type Handler struct {
	client            *redis.Client
	DefaultExpiration time.Duration
}

// NewRedisHandler 创建redis操作句柄. 对应连接未初始化时返回nil.
func NewRedisHandler(db string) *Handler {
	cli := Client(db)
	if cli == nil {
		return nil
	}
	return &Handler{client: cli, DefaultExpiration: time.Hour}
}

// Client 获取底层redis客户端.
func Client(db string) *redis.Client {
	return clientMap[db].cli
}

// Expire 调整默认过期时间.
func (rh *Handler) Expire(expiration time.Duration) {
	rh.DefaultExpiration = expiration
}

// Get 读取字符串值. 键不存在时返回空串与redis.Nil错误.
func (rh *Handler) Get(key string) (string, error) {
	return rh.client.Get(key).Result()
}

// IsNil 判断错误是否为"键不存在".
func IsNil(err error) bool {
	return err == redis.Nil
}

// Set 以默认过期时间写入.
func (rh *Handler) Set(key string, value interface{}) error {
	return rh.client.Set(key, value, rh.DefaultExpiration).Err()
}

// SetWithExpireTime 以指定过期时间写入.
func (rh *Handler) SetWithExpireTime(key string, value string, expiry time.Duration) error {
	return rh.client.Set(key, value, expiry).Err()
}

// Delete 删除键.
func (rh *Handler) Delete(keys ...string) {
	rh.client.Del(keys...)
}

// AcquireLock 获取分布式锁(SETNX), 返回是否获取成功.
func (rh *Handler) AcquireLock(key string, value string, expiry time.Duration) (isSuccess bool, err error) {
	isSuccess, err = rh.client.SetNX(key, value, expiry).Result()
	return
}

// ScanKeys 使用 Redis SCAN 命令迭代查找匹配的键, 避免阻塞服务器.
func (rh *Handler) ScanKeys(pattern string) ([]string, error) {
	var cursor uint64
	var keys []string

	for {
		var currentKeys []string
		var err error
		currentKeys, cursor, err = rh.client.Scan(cursor, pattern, 10).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, currentKeys...)
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// Pub 发布消息.
func (rh *Handler) Pub(channel string, message string) error {
	return rh.client.Publish(channel, message).Err()
}

// Subscribe 订阅通道.
func (rh *Handler) Subscribe(channel string) *redis.PubSub {
	return rh.client.Subscribe(channel)
}
