// Copyright 2023 The decfp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decfp

import (
	"github.com/globalsign/mgo/bson"
)

// GetBSON converts d to the BSON Decimal128 type. Values beyond the 34
// significant digits of Decimal128 are rounded by the codec.
func (d *Decimal) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(d.String())
}

// SetBSON parses d from the BSON Decimal128 type.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	err := raw.Unmarshal(&w)
	if err != nil {
		return err
	}
	_, err = d.SetString(w.String())
	return err
}
