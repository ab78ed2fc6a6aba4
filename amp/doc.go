// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package amp chains Intcode VM instances into amplifier networks.
//
// A network runs N instances of the same program. Each instance first receives
// its phase setting as input, then the output of the previous instance. The
// first instance receives a seed value. In a feedback network, the output of
// the last instance is fed back to the first one until the last instance
// halts.
//
// Instances never run concurrently: the Network scheduler steps them one
// after another in a fixed round-robin order, relying on vm.Instance
// suspension to hand over control.
package amp
