package sync

import (
	"github.com/listenupapp/listenup-client/internal/models"
	"github.com/listenupapp/listenup-client/pkg/api"
)

// Wire -> local conversions shared by operation handlers (which save
// the server's response after a successful push) and pull mergers.

func bookFromWire(w *api.Book, now int64) *models.Book {
	book := &models.Book{
		Syncable: models.Syncable{
			ID:            w.ID,
			SyncState:     models.SyncStateSynced,
			LastModified:  now,
			ServerVersion: w.UpdatedAt,
		},
		Title:       w.Title,
		Subtitle:    w.Subtitle,
		Description: w.Description,
		Publisher:   w.Publisher,
		PublishYear: w.PublishYear,
		Language:    w.Language,
		ASIN:        w.ASIN,
		ISBN:        w.ISBN,
		Duration:    w.Duration,
	}
	for _, c := range w.Contributors {
		book.Contributors = append(book.Contributors, models.BookContributor{
			ContributorID: c.ContributorID,
			Name:          c.Name,
			Role:          c.Role,
		})
	}
	for _, s := range w.Series {
		book.Series = append(book.Series, models.BookSeriesRef{
			SeriesID: s.SeriesID,
			Name:     s.Name,
			Sequence: s.Sequence,
		})
	}
	return book
}

func contributorFromWire(w *api.Contributor, now int64) *models.Contributor {
	return &models.Contributor{
		Syncable: models.Syncable{
			ID:            w.ID,
			SyncState:     models.SyncStateSynced,
			LastModified:  now,
			ServerVersion: w.UpdatedAt,
		},
		Name:        w.Name,
		Description: w.Description,
		ASIN:        w.ASIN,
	}
}

func seriesFromWire(w *api.Series, now int64) *models.Series {
	return &models.Series{
		Syncable: models.Syncable{
			ID:            w.ID,
			SyncState:     models.SyncStateSynced,
			LastModified:  now,
			ServerVersion: w.UpdatedAt,
		},
		Name:        w.Name,
		Description: w.Description,
	}
}
