package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// LastSyncMetadataKey stores the time of the last completed reconciliation.
const LastSyncMetadataKey = "last_sync"

const tabFetchConcurrency = 4

// SyncReport summarizes one reconciliation pass.
type SyncReport struct {
	Windows  int           `json:"windows"`
	Created  int           `json:"created"`
	Restored int           `json:"restored"`
	Archived int           `json:"archived"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
	Shared   bool          `json:"shared"`
	// HostPending is set when the host had not reported its full window
	// list yet, so no space was archived.
	HostPending bool `json:"host_pending"`
}

// SynchronizeWindowsAndSpaces reconciles live host windows with the space
// maps: unbound windows become spaces (or complete a pending restore), and
// active spaces whose window is gone are archived. Concurrent callers share
// one pass.
func (m *Manager) SynchronizeWindowsAndSpaces(ctx context.Context) (SyncReport, error) {
	v, err, shared := m.syncGroup.Do("sync", func() (any, error) {
		return m.synchronize(ctx)
	})
	report, _ := v.(SyncReport)
	report.Shared = shared
	observe("sync", err)
	return report, err
}

func (m *Manager) synchronize(ctx context.Context) (SyncReport, error) {
	log := logging.FromContext(ctx)
	start := time.Now()
	var report SyncReport

	// Spaces bound after the window list is taken are not judged by it.
	candidates := m.GetAllSpaces()
	report.HostPending = !m.hostReady()

	hctx, cancel := m.hostContext(ctx)
	windows, err := m.windows.GetAllWindows(hctx)
	cancel()
	if err != nil {
		return report, fmt.Errorf("list windows: %w", err)
	}
	report.Windows = len(windows)

	if err := m.fillTabs(ctx, windows); err != nil {
		return report, err
	}

	live := make(map[entity.WindowID]struct{}, len(windows))
	var errs []error
	for _, w := range windows {
		live[w.ID] = struct{}{}
		if _, bound := m.SpaceForWindow(w.ID); bound {
			continue
		}
		restored, err := m.HandleWindowCreated(ctx, w)
		switch {
		case err != nil:
			report.Failed++
			errs = append(errs, fmt.Errorf("bind window %d: %w", w.ID, err))
		case restored:
			report.Restored++
		default:
			report.Created++
		}
	}

	for _, s := range candidates {
		if report.HostPending {
			break
		}
		if _, ok := live[s.WindowID]; ok {
			continue
		}
		if _, err := m.CloseSpace(ctx, s.WindowID); err != nil {
			if errors.Is(err, entity.ErrSpaceNotFound) {
				continue
			}
			report.Failed++
			errs = append(errs, fmt.Errorf("archive space %s: %w", s.ID, err))
			continue
		}
		report.Archived++
	}

	report.Duration = time.Since(start)
	syncDuration.Observe(report.Duration.Seconds())

	pctx, pcancel := m.persistContext(ctx)
	if err := m.repo.SetMetadata(pctx, LastSyncMetadataKey, m.now().UTC().Format(time.RFC3339Nano)); err != nil {
		log.Warn().Err(err).Msg("failed to record sync time")
	}
	pcancel()

	m.publish(ctx, m.snapshotPayload(), entity.PriorityNormal)

	log.Debug().
		Int("windows", report.Windows).
		Int("created", report.Created).
		Int("restored", report.Restored).
		Int("archived", report.Archived).
		Int("failed", report.Failed).
		Bool("host_pending", report.HostPending).
		Dur("duration", report.Duration).
		Msg("windows and spaces synchronized")
	return report, errors.Join(errs...)
}

// fillTabs lists tabs for windows that were reported without any. Listing
// errors leave the window without tabs.
func (m *Manager) fillTabs(ctx context.Context, windows []entity.Window) error {
	if m.tabs == nil {
		return nil
	}
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tabFetchConcurrency)
	for i := range windows {
		if len(windows[i].Tabs) > 0 {
			continue
		}
		g.Go(func() error {
			hctx, cancel := m.hostContext(gctx)
			defer cancel()
			tabs, err := m.tabs.ListTabs(hctx, windows[i].ID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Debug().Err(err).Int64("window_id", int64(windows[i].ID)).Msg("could not list tabs during sync")
				return nil
			}
			windows[i].Tabs = tabs
			return nil
		})
	}
	return g.Wait()
}
