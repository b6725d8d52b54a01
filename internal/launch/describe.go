package launch

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Info is what the OS reports about a started child.
type Info struct {
	PID       int32
	Name      string
	CreatedAt time.Time
	Running   bool
}

// Describe looks the child up in the process table. It is only used for the
// log; a child that exits immediately yields Running == false, not an error.
func Describe(ctx context.Context, pid int) (Info, error) {
	info := Info{PID: int32(pid)}

	exists, err := process.PidExistsWithContext(ctx, info.PID)
	if err != nil {
		return info, fmt.Errorf("failed to query pid %d: %w", pid, err)
	}
	if !exists {
		return info, nil
	}

	p, err := process.NewProcessWithContext(ctx, info.PID)
	if err != nil {
		return info, nil
	}
	info.Running = true

	if name, err := p.NameWithContext(ctx); err == nil {
		info.Name = name
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		info.CreatedAt = time.UnixMilli(ms)
	}
	return info, nil
}
