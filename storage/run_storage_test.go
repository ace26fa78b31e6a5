package storage

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gopkg.in/mgo.v2"

	"github.com/Cloud-Pie/EFT/internal/util"
	"github.com/Cloud-Pie/EFT/types"
)

const testDatabase = "EmissionsTest"

func TestRunDAO(t *testing.T) {
	if !isServerAvailable() {
		t.Skip("MongoDB is not available")
	}

	runDAO := &RunDAO{Server: util.DEFAULT_DB_SERVER_RUNS, Database: testDatabase}
	if err := runDAO.Connect(); err != nil {
		t.Fatal(err)
	}
	defer runDAO.Close()
	defer runDAO.session.DB(testDatabase).DropDatabase()

	now := time.Now()
	run, err := types.NewRun(util.INPUT_FILE, util.OUTPUT_FILE, 3, types.Summary{Partners: 1, DataCenters: 1, Records: 2}, now, now)
	if err != nil {
		t.Fatal(err)
	}
	if err := runDAO.Insert(run); err != nil {
		t.Error(
			"For", "Insert",
			"expected", nil,
			"got", err,
		)
	}

	stored, err := runDAO.FindByID(run.ID.Hex())
	if err != nil || stored.Fingerprint != run.Fingerprint || stored.Summary != run.Summary {
		t.Error(
			"For", "FindByID",
			"expected", run,
			"got", stored, err,
		)
	}

	sameShape, err := runDAO.FindByFingerprint(run.Fingerprint)
	if err != nil || len(sameShape) != 1 {
		t.Error(
			"For", "FindByFingerprint",
			"expected", 1,
			"got", len(sameShape), err,
		)
	}

	if err := runDAO.DeleteById(run.ID.Hex()); err != nil {
		t.Error(
			"For", "DeleteById",
			"expected", nil,
			"got", err,
		)
	}
	runs, err := runDAO.FindAll()
	if err != nil || len(runs) != 0 {
		t.Error(
			"For", "FindAll after delete",
			"expected", 0,
			"got", len(runs), err,
		)
	}
}

func TestInvalidID(t *testing.T) {
	runDAO := &RunDAO{}
	if _, err := runDAO.FindByID("not-an-id"); err != ErrInvalidID {
		t.Error(
			"For", "FindByID",
			"expected", ErrInvalidID,
			"got", err,
		)
	}
	if err := runDAO.DeleteById("not-an-id"); err != ErrInvalidID {
		t.Error(
			"For", "DeleteById",
			"expected", ErrInvalidID,
			"got", err,
		)
	}
}

func isServerAvailable() bool {
	session, err := mgo.DialWithTimeout(util.DEFAULT_DB_SERVER_RUNS, time.Second)
	if err != nil {
		return false
	}
	session.Close()
	return true
}

func TestGetRunDAODialsOnceForConcurrentCallers(t *testing.T) {
	dialErr := errors.New("no reachable servers")
	var dials int32
	defer func(original func(string, time.Duration) (*mgo.Session, error), backoff time.Duration) {
		dial = original
		RedialBackoff = backoff
		RunDB = nil
		lastDialErr = nil
	}(dial, RedialBackoff)
	dial = func(server string, timeout time.Duration) (*mgo.Session, error) {
		atomic.AddInt32(&dials, 1)
		time.Sleep(50 * time.Millisecond)
		return nil, dialErr
	}
	RedialBackoff = time.Hour

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runDAO, err := GetRunDAO("127.0.0.1:1", testDatabase)
			if runDAO != nil {
				runDAO.Close()
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	if atomic.LoadInt32(&dials) != 1 {
		t.Error(
			"For", "concurrent GetRunDAO",
			"expected", 1,
			"got", atomic.LoadInt32(&dials),
		)
	}
	for _, err := range errs {
		if err != dialErr {
			t.Error(
				"For", "concurrent GetRunDAO error",
				"expected", dialErr,
				"got", err,
			)
		}
	}

	//Once the backoff has passed the server is dialed again
	RedialBackoff = 0
	if _, err := GetRunDAO("127.0.0.1:1", testDatabase); err != dialErr || atomic.LoadInt32(&dials) != 2 {
		t.Error(
			"For", "GetRunDAO after backoff",
			"expected", 2,
			"got", atomic.LoadInt32(&dials), err,
		)
	}
}
