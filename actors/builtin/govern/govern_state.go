package govern

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/util"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type State struct {
	// Sole address allowed to grant and revoke authorities.
	Supervisor address.Address

	// Authorities granted to each governor.
	Governors cid.Cid // Map, HAMT[address]GrantedAuthorities, ID-Address
}

type GrantedAuthorities struct {
	// Granted methods per actor code.
	CodeMethods cid.Cid // Map, HAMT[actor codeID]BitField
}

func ConstructState(store adt.Store, supervisor address.Address) (*State, error) {
	if supervisor.Protocol() != address.ID {
		return nil, xerrors.New("supervisor address must be an ID address")
	}

	emptyMapCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		Supervisor: supervisor,
		Governors:  emptyMapCid,
	}, nil
}

func (st *State) IsGranted(store adt.Store, governors *adt.Map, governor address.Address, codeID cid.Cid, method abi.MethodNum) (bool, error) {
	var granted GrantedAuthorities
	found, err := governors.Get(abi.AddrKey(governor), &granted)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	codeMethods, err := adt.AsMap(store, granted.CodeMethods, builtin.DefaultHamtBitwidth)
	if err != nil {
		return false, xerrors.Errorf("failed to load CodeMethods: %w", err)
	}
	var bf bitfield.BitField
	found, err = codeMethods.Get(abi.CidKey(codeID), &bf)
	if err != nil {
		return false, xerrors.Errorf("failed to get privileges: %w", err)
	}
	if !found {
		return false, nil
	}

	return util.BitFieldContainsAll(bf, bitfield.NewFromSet([]uint64{uint64(method)}))
}

// Merges (or subtracts) the given method sets into the governor's granted
// authorities. An empty grant set drops the governor entry entirely.
func (st *State) grantOrRevoke(store adt.Store, governors *adt.Map, governor address.Address,
	targetCodeMethods map[cid.Cid][]abi.MethodNum, grant bool) error {

	if len(targetCodeMethods) == 0 {
		return nil
	}

	var granted GrantedAuthorities
	found, err := governors.Get(abi.AddrKey(governor), &granted)
	if err != nil {
		return err
	}
	var codeMethods *adt.Map
	if !found {
		if !grant { // nothing to revoke
			return nil
		}
		codeMethods, err = adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
		if err != nil {
			return xerrors.Errorf("failed to create empty map: %w", err)
		}
	} else {
		codeMethods, err = adt.AsMap(store, granted.CodeMethods, builtin.DefaultHamtBitwidth)
		if err != nil {
			return xerrors.Errorf("failed to load CodeMethods: %w", err)
		}
	}

	for codeID, methods := range targetCodeMethods {
		if len(methods) == 0 {
			continue
		}

		setBits := make([]uint64, 0, len(methods))
		for _, method := range methods {
			setBits = append(setBits, uint64(method))
		}

		var bf bitfield.BitField
		found, err = codeMethods.Get(abi.CidKey(codeID), &bf)
		if err != nil {
			return xerrors.Errorf("failed to get privileges: %w", err)
		}
		if !found {
			if !grant { // nothing to revoke
				continue
			}
			bf = bitfield.NewFromSet(setBits)
		} else if grant {
			bf, err = bitfield.MergeBitFields(bf, bitfield.NewFromSet(setBits))
			if err != nil {
				return xerrors.Errorf("failed to merge bitfields: %w", err)
			}
		} else {
			bf, err = bitfield.SubtractBitField(bf, bitfield.NewFromSet(setBits))
			if err != nil {
				return xerrors.Errorf("failed to subtract bitfields: %w", err)
			}
			empty, err := bf.IsEmpty()
			if err != nil {
				return xerrors.Errorf("failed to check bitfield empty: %w", err)
			}
			if empty {
				if err := codeMethods.Delete(abi.CidKey(codeID)); err != nil {
					return xerrors.Errorf("failed to delete empty bitfield: %w", err)
				}
				continue
			}
		}
		if err := codeMethods.Put(abi.CidKey(codeID), bf); err != nil {
			return xerrors.Errorf("failed to put privileges: %w", err)
		}
	}

	keys, err := codeMethods.CollectKeys()
	if err != nil {
		return xerrors.Errorf("failed to collect keys: %w", err)
	}
	if len(keys) == 0 {
		return governors.Delete(abi.AddrKey(governor))
	}
	granted.CodeMethods, err = codeMethods.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush CodeMethods: %w", err)
	}
	return governors.Put(abi.AddrKey(governor), &granted)
}
