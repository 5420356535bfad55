package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Monitor collects process, host, and portfolio statistics for the
// operations dashboard.
type Monitor struct {
	db *pgxpool.Pool
}

type Snapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	System    SystemStats    `json:"system"`
	Database  DatabaseStats  `json:"database"`
	Portfolio PortfolioStats `json:"portfolio"`
}

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      string  `json:"disk_used"`
	DiskTotal     string  `json:"disk_total"`
}

type DatabaseStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
}

type PortfolioStats struct {
	Properties         int `json:"properties"`
	Units              int `json:"units"`
	OccupiedUnits      int `json:"occupied_units"`
	ActiveAssignments  int `json:"active_assignments"`
	PendingMaintenance int `json:"pending_maintenance"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewMonitor(db *pgxpool.Pool) *Monitor {
	return &Monitor{db: db}
}

func (m *Monitor) Collect(ctx context.Context) Snapshot {
	snap := Snapshot{Timestamp: time.Now()}

	cpuPercents, _ := cpu.Percent(0, false)
	if len(cpuPercents) > 0 {
		snap.System.CPUPercent = cpuPercents[0]
	}

	if memStats, err := mem.VirtualMemory(); err == nil {
		snap.System.MemoryPercent = memStats.UsedPercent
		snap.System.MemoryUsed = formatBytes(memStats.Used)
		snap.System.MemoryTotal = formatBytes(memStats.Total)
	}

	if diskStats, err := disk.Usage("/"); err == nil {
		snap.System.DiskPercent = diskStats.UsedPercent
		snap.System.DiskUsed = formatBytes(diskStats.Used)
		snap.System.DiskTotal = formatBytes(diskStats.Total)
	}

	poolStats := m.db.Stat()
	snap.Database = DatabaseStats{
		TotalConns:    poolStats.TotalConns(),
		IdleConns:     poolStats.IdleConns(),
		AcquiredConns: poolStats.AcquiredConns(),
	}

	snap.Portfolio = m.collectPortfolio(ctx)

	return snap
}

func (m *Monitor) collectPortfolio(ctx context.Context) PortfolioStats {
	var stats PortfolioStats

	query := `SELECT
			(SELECT COUNT(*) FROM properties),
			(SELECT COUNT(*) FROM units),
			(SELECT COUNT(*) FROM units WHERE status = 'occupied'),
			(SELECT COUNT(*) FROM assignments WHERE is_active),
			(SELECT COUNT(*) FROM maintenance_requests WHERE status = 'pending')`

	err := m.db.QueryRow(ctx, query).Scan(
		&stats.Properties,
		&stats.Units,
		&stats.OccupiedUnits,
		&stats.ActiveAssignments,
		&stats.PendingMaintenance,
	)
	if err != nil {
		log.Printf("collect portfolio stats: %v", err)
	}

	return stats
}

// StatsHandler returns a single snapshot as JSON.
func (m *Monitor) StatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := m.Collect(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// LiveHandler streams snapshots over a websocket until the client
// disconnects.
func (m *Monitor) LiveHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	// Send an initial snapshot so the client doesn't wait a full tick.
	if err := conn.WriteJSON(m.Collect(r.Context())); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(m.Collect(r.Context())); err != nil {
				return
			}
		}
	}
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
