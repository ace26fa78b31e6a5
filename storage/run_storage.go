package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/op/go-logging"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/Cloud-Pie/EFT/internal/util"
	"github.com/Cloud-Pie/EFT/types"
)

//Time to wait for the database, and to wait before dialing again after a failure
var (
	DialTimeout   = 5 * time.Second
	RedialBackoff = 30 * time.Second
)

var (
	log  = logging.MustGetLogger("eft")
	dial = mgo.DialWithTimeout

	//Shared connection, only touched while holding runDBMu
	RunDB        *RunDAO
	runDBMu      sync.Mutex
	lastDialErr  error
	lastDialTime time.Time
)

var ErrInvalidID = errors.New("invalid run id")

type RunDAO struct {
	Server   string
	Database string
	session  *mgo.Session
}

//Connect to the database
func (p *RunDAO) Connect() error {
	if p.session != nil {
		return nil
	}
	session, err := dial(p.Server, DialTimeout)
	if err != nil {
		return err
	}
	p.session = session
	return nil
}

//Copy returns a DAO with its own session over the same connection
func (p *RunDAO) Copy() *RunDAO {
	return &RunDAO{
		Server:   p.Server,
		Database: p.Database,
		session:  p.session.Copy(),
	}
}

//Close the session to the database
func (p *RunDAO) Close() {
	if p.session != nil {
		p.session.Close()
		p.session = nil
	}
}

func (p *RunDAO) runs() *mgo.Collection {
	return p.session.DB(p.Database).C(util.DEFAULT_DB_COLLECTION_RUNS)
}

//Retrieve all the stored runs, latest first
func (p *RunDAO) FindAll() ([]types.Run, error) {
	var runs []types.Run
	err := p.runs().Find(bson.M{}).Sort("-start_time").All(&runs)
	return runs, err
}

//Retrieve the run with the specified ID
func (p *RunDAO) FindByID(id string) (types.Run, error) {
	var run types.Run
	if !bson.IsObjectIdHex(id) {
		return run, ErrInvalidID
	}
	err := p.runs().FindId(bson.ObjectIdHex(id)).One(&run)
	return run, err
}

//Retrieve the runs over documents with the same shape
func (p *RunDAO) FindByFingerprint(fingerprint string) ([]types.Run, error) {
	var runs []types.Run
	err := p.runs().Find(bson.M{"fingerprint": fingerprint}).All(&runs)
	return runs, err
}

//Insert a new run
func (p *RunDAO) Insert(run types.Run) error {
	return p.runs().Insert(&run)
}

//Delete the run with the specified ID
func (p *RunDAO) DeleteById(id string) error {
	if !bson.IsObjectIdHex(id) {
		return ErrInvalidID
	}
	return p.runs().RemoveId(bson.ObjectIdHex(id))
}

//GetRunDAO returns a DAO with its own session, the caller must Close it.
//The server is dialed once and the connection reused while server and database do not change.
//After a failed dial the error is returned without dialing again until RedialBackoff has passed.
func GetRunDAO(server string, database string) (*RunDAO, error) {
	runDBMu.Lock()
	defer runDBMu.Unlock()
	if RunDB == nil || RunDB.Server != server || RunDB.Database != database {
		if RunDB != nil {
			RunDB.Close()
		}
		RunDB = &RunDAO{
			Server:   server,
			Database: database,
		}
		lastDialErr = nil
	}
	if RunDB.session == nil {
		if lastDialErr != nil && time.Since(lastDialTime) < RedialBackoff {
			return nil, lastDialErr
		}
		lastDialTime = time.Now()
		lastDialErr = RunDB.Connect()
		if lastDialErr != nil {
			log.Errorf("Cannot connect to %s: %s", server, lastDialErr)
			return nil, lastDialErr
		}
	}
	return RunDB.Copy(), nil
}
