package usecase

import "time"

// 現在時刻の取得。期限判定をテストできるように差し替え可能にする。
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
