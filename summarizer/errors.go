package summarizer

import "errors"

// ErrInvalidInput 은 빈 텍스트(단어 0개)나 잘못된 옵션 값이 들어온 경우이다.
// 호출자가 사용자용 메시지로 변환해 노출한다.
var ErrInvalidInput = errors.New("invalid input")

// ErrAbstractiveUnavailable 은 생성형 요약 클라이언트를 만들 수 없는 경우이다(API 키 없음 등).
var ErrAbstractiveUnavailable = errors.New("abstractive summarizer unavailable")

// ErrQuotaExhausted 는 일일 LLM 호출 한도를 모두 사용한 경우이다.
var ErrQuotaExhausted = errors.New("summary quota exhausted")
