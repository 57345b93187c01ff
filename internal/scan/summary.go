package scan

import (
	"cmp"
	"slices"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/devsweep/internal/project"
)

// KindSummary aggregates projects of one kind.
type KindSummary struct {
	Kind             string `json:"kind"`
	Projects         int    `json:"projects"`
	ReclaimableBytes uint64 `json:"reclaimable_bytes"`
}

// Summary is the aggregate view of a scan.
type Summary struct {
	TotalProjects    int           `json:"total_projects"`
	ReclaimableBytes uint64        `json:"total_reclaimable_bytes"`
	ByKind           []KindSummary `json:"by_kind"`
}

// Summarize groups projects by kind, largest kind first; ties sort by name.
func Summarize(projects []project.ScannedProject) Summary {
	index := make(map[string]int)
	s := Summary{TotalProjects: len(projects)}

	for _, p := range projects {
		s.ReclaimableBytes += p.TotalCleanableBytes
		i, ok := index[p.Kind]
		if !ok {
			i = len(s.ByKind)
			index[p.Kind] = i
			s.ByKind = append(s.ByKind, KindSummary{Kind: p.Kind})
		}
		s.ByKind[i].Projects++
		s.ByKind[i].ReclaimableBytes += p.TotalCleanableBytes
	}

	slices.SortFunc(s.ByKind, func(a, b KindSummary) int {
		if c := cmp.Compare(b.ReclaimableBytes, a.ReclaimableBytes); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return s
}

// VolumeUsage describes the filesystem holding a scan root.
type VolumeUsage struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total_bytes"`
	Free        uint64  `json:"free_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// Volume reports capacity and free space for the volume containing path.
func Volume(path string) (VolumeUsage, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, err
	}
	return VolumeUsage{
		Path:        u.Path,
		Total:       u.Total,
		Free:        u.Free,
		UsedPercent: u.UsedPercent,
	}, nil
}
