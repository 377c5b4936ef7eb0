package constants

import "time"

var CacheTTL = struct {
	Reading   time.Duration
	Narrative time.Duration
	Ranking   time.Duration
}{
	Reading:   24 * time.Hour,  // 이름 분석 결과
	Narrative: 6 * time.Hour,   // AI 문구
	Ranking:   2 * time.Minute, // 랭킹 조회
}

var CacheKeys = struct {
	ReadingPrefix   string
	NarrativePrefix string
	Ranking         string
}{
	ReadingPrefix:   "namevibes:reading:",
	NarrativePrefix: "namevibes:narrative:",
	Ranking:         "namevibes:ranking",
}

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
}

var Limits = struct {
	MaxNameLength  int
	MaxBatchNames  int
	MaxRankingSize int
	DefaultRanking int
	MaxNarrative   int
}{
	MaxNameLength:  64,
	MaxBatchNames:  20,
	MaxRankingSize: 50,
	DefaultRanking: 10,
	MaxNarrative:   500,
}

var Concurrency = struct {
	Batch int
}{
	Batch: 8,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	RateLimitTimeout time.Duration
}{
	FailureThreshold: 3,                // 3회 연속 실패 시 Circuit OPEN
	ResetTimeout:     30 * time.Second, // 기본 재시도 대기 시간
	RateLimitTimeout: 10 * time.Minute, // 429 전용 타임아웃
}

var BotConfig = struct {
	CommandTimeout time.Duration
}{
	CommandTimeout: 30 * time.Second, // AI 문구 생성 포함
}

var HTTPConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	RequestTimeout    time.Duration
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	RequestTimeout:    15 * time.Second,
}
