package core

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// Each worker owns a full browser instance; budget roughly 1GiB apiece and
// never run more workers than logical CPUs.
const sessionMemoryBudget = 1 * 1024 * 1024 * 1024

const (
	minWorkers = 1
	maxWorkers = 4
)

// ClampWorkers bounds the requested concurrency to 1-4 and then reduces it
// further when free memory or CPU count cannot carry that many browser
// sessions. Probe failures leave the request untouched.
func ClampWorkers(requested int) int {
	workers := requested
	if workers < minWorkers {
		workers = minWorkers
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		byMemory := int(vm.Available / sessionMemoryBudget)
		if byMemory < minWorkers {
			byMemory = minWorkers
		}
		if byMemory < workers {
			utils.Warnf("reducing workers %d -> %d: %.1fGB memory available",
				workers, byMemory, float64(vm.Available)/float64(sessionMemoryBudget))
			workers = byMemory
		}
	}

	if cpus, err := cpu.Counts(true); err == nil && cpus < workers {
		utils.Warnf("reducing workers %d -> %d: only %d logical CPUs", workers, cpus, cpus)
		workers = cpus
	}

	if workers != requested {
		utils.Infof("using %d parallel scraper(s) (requested %d)", workers, requested)
	}
	return workers
}
