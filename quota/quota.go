package quota

import (
	"context"
	"sync"
	"time"

	"multilang-summarizer/config"
)

// Limiter 는 생성형 요약(LLM) 호출에 대한 분당 간격/일일 한도를 관리한다.
// 인메모리로 동작하며 프로세스가 재시작되면 카운터가 초기화된다.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewLimiter 는 summary_quota 설정으로 Limiter 를 만든다.
// 값이 0 이하인 방향으로는 제한을 두지 않는다.
func NewLimiter(cfg config.QuotaConfig) *Limiter {
	var interval time.Duration
	if cfg.RequestsPerMinute > 0 {
		interval = time.Minute / time.Duration(cfg.RequestsPerMinute)
	}

	return &Limiter{
		dailyLimit: max(cfg.RequestsPerDay, 0),
		interval:   interval,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Reserve 는 호출 한 번을 예약한다.
//   - 일일 한도 소진: (false, nil). 호출자는 LLM 호출을 건너뛴다.
//   - 컨텍스트 취소: (false, ctx.Err()).
//
// 분당 간격이 남아 있으면 그만큼 대기한 뒤 다시 평가한다.
func (l *Limiter) Reserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now()
		if key := now.Format("2006-01-02"); l.dayKey != key {
			l.dayKey = key
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		}
	}
}

// Remaining 은 오늘 남은 호출 수이다. 일일 한도가 없으면 -1 이다.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dailyLimit <= 0 {
		return -1
	}
	if l.dayKey != l.now().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}
