package event

// opcodeTable holds the metadata of every known opcode, indexed by opcode.
var opcodeTable = [MaxOpcode + 1]Metadata{
	0x00: {Description: "Ends the current ReqStack execution; resetting it back to defaults.", Sizes: []int{1}},
	0x01: {Description: "Directly sets the ExecPointer position.", Sizes: []int{3}},
	0x02: {Description: "Handles multiple types of if conditional statements.", Sizes: []int{8}},
	0x03: {Description: "Gets a value then stores it.", Sizes: []int{5}},
	0x04: {Description: "Deprecated. This opcode appears to be deprecated, it does nothing.", Sizes: []int{3}},
	0x05: {Description: "Sets a value to 1.", Sizes: []int{3}},
	0x06: {Description: "Sets a value to 0.", Sizes: []int{3}},
	0x07: {Description: "Adds two values then stores the result.", Sizes: []int{5}},
	0x08: {Description: "Subtracts two values then stores the result.", Sizes: []int{5}},
	0x09: {Description: "Sets a bit flag value then stores the result.", Sizes: []int{5}},
	0x0A: {Description: "Clears a bit flag value then stores the result", Sizes: []int{5}},
	0x0B: {Description: "Increments a value then store it.", Sizes: []int{3}},
	0x0C: {Description: "Decrements a value then store it.", Sizes: []int{3}},
	0x0D: {Description: "Gets the bitwise AND result of two values and stores it.", Sizes: []int{5}},
	0x0E: {Description: "Gets the bitwise OR result of two values and stores it.", Sizes: []int{5}},
	0x0F: {Description: "Gets the bitwise XOR result of two values and stores it.", Sizes: []int{5}},
	0x10: {Description: "Gets the bitwise left-shift result of two values and stores it.", Sizes: []int{5}},
	0x11: {Description: "Gets the bitwise right-shift result of two values and stores it.", Sizes: []int{5}},
	0x12: {Description: "Generates a random number via rand() and stores it.", Sizes: []int{3}},
	0x13: {Description: "Generates a random number via rand(), with a given remainder, and stores it.", Sizes: []int{5}},
	0x14: {Description: "Gets the product of two values and stores it.", Sizes: []int{5}},
	0x15: {Description: "Gets the quotient of two values and stores it.", Sizes: []int{5}},
	0x16: {Description: "Performs a sin operation on two values and stores the result.", Sizes: []int{7}},
	0x17: {Description: "Performs a cos operation on two values and stores the result.", Sizes: []int{7}},
	0x18: {Description: "Performs an atan2 operation on two values and stores the result.", Sizes: []int{7}},
	0x19: {Description: "Reads two values and stores them in flipped order. (Endian swap.)", Sizes: []int{5}},
	0x1A: {Description: "Jumps to a new position in the event data.", Sizes: []int{3}},
	0x1B: {Description: "Returns from the most recent jump on the JumpStack.", Sizes: []int{1}},
	0x1C: {Description: "Sets, or updates (decreases), the current ReqStack[RunPos].WaitTime value.", Sizes: []int{3}},
	0x1D: {Description: "Loads and prints an event message to chat, using EntityTargetIndex[1] as the speaker.", Sizes: []int{3}},
	0x1E: {Description: "Tells an entity to look at another entity and begin 'talking'. (This puts the 'talking' entity into an animation where their mouth moves.)", Sizes: []int{5}},
	0x1F: {Description: "Updates the event position information.", Sizes: []int{2, 8}, Resolver: resolveModeByte(map[byte]int{0x00: 8, 0x01: 2})},
	0x20: {Description: "Sets the CliEventUcFlag flag value. (This flag is used to lock the player from controlling their character.)", Sizes: []int{2}},
	0x21: {Description: "Sets the EventExecEnd flag value to 1.", Sizes: []int{1}},
	0x22: {Description: "Calls XiAtelBuff::SetEventHideFlag for the current event entity.", Sizes: []int{2}},
	0x23: {Description: "Waits for the local player to interact with a dialog message.", Sizes: []int{1}},
	0x24: {Description: "Creates a dialog window with selectable options for the player to choose from.", Sizes: []int{7}},
	0x25: {Description: "Waits for a dialog select (created by opcode 0x0024) to be made by the player.", Sizes: []int{1}},
	0x26: {Description: "Yields the event VM. Note: This opcode may be deprecated. Since it only ever sets the RetFlag the opcode will never advance further leaving it in an endless self-handled cycle each time the VM is ticked.", Sizes: []int{1}},
	0x27: {Description: "Calls a helper FUNC_REQSet which in turn calls XiEvent::ReqSet after checking some conditions.", Sizes: []int{7}},
	0x28: {Description: "Similar to opcode 0x0027, but with extra checks/conditions. The function starts by checking for the current ReqStack[RunPos].ReqFlag being set, then will do a similar check setup to FUNC_REQSet but will end with calling XiEvent::GetReqStatus instead.", Sizes: []int{7}},
	0x29: {Description: "Similar to opcode 0x0028.", Sizes: []int{7}},
	0x2A: {Description: "Similar to opcode 0x0028.", Sizes: []int{6}},
	0x2B: {Description: "Loads and prints an event message with the given entity as the speaker. This handler works similar to 0x001D, however, the opcode holds the entity information used as the speaker.", Sizes: []int{7}},
	0x2C: {Description: "Creates and loads a CMoSchedularTask on the desired entity. (Appears to set an entity action.)", Sizes: []int{13}},
	0x2D: {Description: "Creates and loads a zone based CMoSchedularTask on the desired entities. (Appears to schedule a zone action.)", Sizes: []int{13}},
	0x2E: {Description: "Sets the CliEventCancelSetData flag. If CliEventCancelSetFlag is set, also sets the CliEventCancelFlag flag.", Sizes: []int{1}},
	0x2F: {Description: "Adjusts the given entities Render.Flag0 value.", Sizes: []int{6}},
	0x30: {Description: "Sets the ucoff_continue flag to 0.", Sizes: []int{1}},
	0x31: {Description: "Updates the event position information.", Sizes: []int{2, 10}},
	0x32: {Description: "Sets the ExtData[1]->MainSpeed value.", Sizes: []int{3}},
	0x33: {Description: "Adjusts the event entities Render.Flags0 value.", Sizes: []int{2}},
	0x34: {Description: "Appears to load and unload an additional zone to be used with the event.", Sizes: []int{3}},
	0x35: {Description: "Similar to opcode 0x0034. This appears to load an additional zone for the event, however this handler does not have a call to XiZone::Close.", Sizes: []int{3}},
	0x36: {Description: "Updates the current ExtData[1]->EventPos information, calibrates the current event entity position then calls XiAtelBuff::CopyAllPosEvent and XiAtelBuff::ReqExecHitCheck.", Sizes: []int{7}},
	0x37: {Description: "Updates the current ExtData[1]->EventPos and ExtData[1]->EventDir[1] information, calibrates the current event entity position then calls XiAtelBuff::CopyAllPosEvent and XiAtelBuff::ReqExecHitCheck.", Sizes: []int{9}},
	0x38: {Description: "Sets the lower-word of CliEventModeLocal to a masked value. CliEventModeLocal is used to tell the client how the event should alter the client state.", Sizes: []int{3}},
	0x39: {Description: "Sets the current ExtData[1]->EventDir[1] value.", Sizes: []int{3}},
	0x3A: {Description: "Converts a float Yaw value to it's single byte representation and stores it.", Sizes: []int{7}},
	0x3B: {Description: "Gets the current position of the given entity (or uses the ExtData[1]->EventPos depending on flags) and stores it.", Sizes: []int{11}},
	0x3C: {Description: "Compares two values (using a shift). If condition is met, sets a bit flag and stores the result.", Sizes: []int{7}},
	0x3D: {Description: "Compares two values (using a shift). If condition is met, clears a bit flag and stores the result.", Sizes: []int{7}},
	0x3E: {Description: "Tests if a bit is set. Adjusts the ExecPointer based on the state of the flag.", Sizes: []int{7}},
	0x3F: {Description: "Calculates the remainder of two values and stores the result.", Sizes: []int{7}},
	0x40: {Description: "Sets a bit flag value and stores it. One usage of this opcode is to tell the client which dialog menu options are enabled/available.", Sizes: []int{9}},
	0x41: {Description: "Gets a bit flag value and stores it. One usage of this opcode is to tell the client which dialog menu options are enabled/available.", Sizes: []int{9}},
	0x42: {Description: "Sets the CliEventCancelSetData flag to 0. If CliEventCancelSetFlag is set, then CliEventCancelFlag is also set to 0.", Sizes: []int{1}},
	0x43: {Description: "Used to tell the server the server when the client has updated an event or has completed it.", Sizes: []int{2}},
	0x44: {Description: "Tests if the given entity is valid. Adjusts the ExecPointer based on the result.", Sizes: []int{5}},
	0x45: {Description: "Loads and starts a scheduled task with the given two entities.", Sizes: []int{17}},
	0x46: {Description: "Enables and disables the player camera control. Also disables rendering some menus to allow the game to play cutscenes without unneeded info on screen.", Sizes: []int{2, 4}, Resolver: resolveAlternating(0x46, 2, 4)},
	0x47: {Description: "Updates the players location during an event. This opcode will send an 0x005C packet to the server to inform it of your position change.", Sizes: []int{2, 10}, Resolver: resolveAlternating(0x47, 10, 2)},
	0x48: {Description: "Loads and prints an event message to chat, without a speaker entity.", Sizes: []int{3}},
	0x49: {Description: "Loads and prints an event message to chat, without a speaker entity.", Sizes: []int{7}},
	0x4A: {Description: "Tells an entity to look at another entity.", Sizes: []int{9}},
	0x4B: {Description: "Updates the given entities yaw direction.", Sizes: []int{7}},
	0x4C: {Description: "Sets the event entities StatusEvent to 8 if a specific Render.Flags0 bit is not set. (Open door.)", Sizes: []int{1}},
	0x4D: {Description: "Sets the event entities StatusEvent to 9 if a specific Render.Flags0 bit is not set. (Close door.)", Sizes: []int{1}},
	0x4E: {Description: "Sets the entities event hide flag within Render.Flags0.", Sizes: []int{6}},
	0x4F: {Description: "Sets the event entities StatusEvent to the given value if a specific Render.Flags0 bit is not set.", Sizes: []int{3}},
	0x50: {Description: "Ends a CMoSchedularTask.", Sizes: []int{13}},
	0x51: {Description: "Ends a zone based CMoSchedularTask.", Sizes: []int{13}},
	0x52: {Description: "Ends a CMoSchedularTask. (Load / Main)", Sizes: []int{15}},
	0x53: {Description: "Waits for the given entities schedular to finish its current action.", Sizes: []int{13}},
	0x54: {Description: "Waits for the zone schedular to finish its current action.", Sizes: []int{13}},
	0x55: {Description: "Waits for the Main/Load schedular to finish its current action.", Sizes: []int{15}},
	0x56: {Description: "Deprecated. This opcode does not do anything with the values it reads anymore. This appears to be deprecated.", Sizes: []int{5}},
	0x57: {Description: "Creates a frame delay from the current frame delay value and stores it.", Sizes: []int{3}},
	0x58: {Description: "Yields the event VM.", Sizes: []int{3}},
	0x59: {Description: "Handles multiple cases regarding updating an entities data for events.", Sizes: []int{4, 6, 7, 8}},
	0x5A: {Description: "Updates the event position information.", Sizes: []int{2, 8}},
	0x5B: {Description: "Loads an extended schedular task.", Sizes: []int{15, 17}},
	0x5C: {Description: "Handles multiple cases regarding the music player.", Sizes: []int{4, 6}},
	0x5D: {Description: "Sets, or eases, the current playing music to a new volume.", Sizes: []int{5}},
	0x5E: {Description: "Appears to stop the event entities current action and reset them back to an idle motion.", Sizes: []int{5}},
	0x5F: {Description: "This handler has a few cases, most of which call other opcode handlers and react based on their returns.", Sizes: []int{2, 7, 14, 16, 18}},
	0x60: {Description: "Handler with multiple use cases. The default case where the opcode was two bytes long was deprecated and just skipped now. Adjusts the event entities Render.Flags1 value.", Sizes: []int{2, 4, 6}},
	0x61: {Description: "Adjusts the event entities Render.Flags2 value.", Sizes: []int{2}},
	0x62: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0x63: {Description: "Sets the event entity to play an animation then waits for it to complete.", Sizes: []int{3}},
	0x64: {Description: "Calculates and stores the distance between the given points.", Sizes: []int{11}},
	0x65: {Description: "Calculates and stores the 3D distance between the given entities.", Sizes: []int{11}},
	0x66: {Description: "Handler that calls the same helper call as opcode 0x005B, just with a different arguments.", Sizes: []int{15, 17}},
	0x67: {Description: "Tells the client to hide the entire HUD UI elements during the cutscene. (ie. The compass, status icons, chat, menus, etc.)", Sizes: []int{5}},
	0x68: {Description: "Tells the client to unhide the entire HUD UI elements. (ie. The compass, status icons, chat, menus, etc.)", Sizes: []int{1}},
	0x69: {Description: "Sets the sound volume of the desired sound type.", Sizes: []int{4}},
	0x6A: {Description: "Changes the sound volume of the desired sound type.", Sizes: []int{4}},
	0x6B: {Description: "Appears to stop the given entities current action and reset them back to an idle motion.", Sizes: []int{9}},
	0x6C: {Description: "Fades an enities color in and out. This can be used to both set just the alpha of the entity, but also the color. This works in stages to allow the color to fade in and/or out smoothly, or immediately, depending on the time values set.", Sizes: []int{9}},
	0x6D: {Description: "Deprecated. This opcode appears to be deprecated, it does nothing.", Sizes: []int{7}},
	0x6E: {Description: "Sets the given entity to play an emote animation.", Sizes: []int{7}},
	0x6F: {Description: "Delays the event VM execution until ReqStack[RunPos].WaitTime has reached 0. Used as a yieldable sleep call.", Sizes: []int{1}},
	0x70: {Description: "Checks the event entity for a render flag, yields if set. Otherwise, cancels the entity movement and advances.", Sizes: []int{1}},
	0x71: {Description: "Handles the usage of string input from the player during events. Such as password prompts and similar.", Sizes: []int{2, 4, 6, 8, 10}},
	0x72: {Description: "Appears to load event based weather information and update the weather accordingly for it.", Sizes: []int{4, 6, 10}},
	0x73: {Description: "Schedules tasks for casting magic on the two given entities.", Sizes: []int{11}},
	0x74: {Description: "Adjusts the event entities Render.Flags1 value.", Sizes: []int{2}},
	0x75: {Description: "Loads a room and updates the players sub-region with the server.", Sizes: []int{4, 6, 8}},
	0x76: {Description: "Checks the given entities Render.Flags0 and Render.Flags3 and yields if successful.", Sizes: []int{5}},
	0x77: {Description: "Disables the game clock and sets the client to a specific time for the event. Can also set the weather at the same time.", Sizes: []int{5}},
	0x78: {Description: "Enables the game timer and resets the zone weather.", Sizes: []int{1}},
	0x79: {Description: "Used to look at / rotate towards another entity.", Sizes: []int{10, 12}, Resolver: resolve0x79},
	0x7A: {Description: "Handles multiple entity conditions dependant on following event byte cases.", Sizes: []int{2, 6, 7, 8}},
	0x7B: {Description: "Unsets the given entities talking status, setting their NpcSpeechFrame back to -1.", Sizes: []int{5}},
	0x7C: {Description: "Adjusts the given entities Render.Flags2 value.", Sizes: []int{5}},
	0x7D: {Description: "Loads and starts a scheduled task using the local player as the entity. (Appears to be used to display rank up animations.)", Sizes: []int{3}},
	0x7E: {Description: "Multi-purpose opcode relating to chocobos and mounts.", Sizes: []int{6, 8, 16, 18}},
	0x7F: {Description: "Waits for a dialog select to be made by the player.", Sizes: []int{1}},
	0x80: {Description: "Tests the given entity for several conditions. Yields or moves forward depending on the results. (Appears to be used to check if the entity is loading an action or similar.)", Sizes: []int{5}},
	0x81: {Description: "Sets an unknown value in the given entities warp data.", Sizes: []int{6}},
	0x82: {Description: "Finds and hit tests a rect based on the current event entities position.", Sizes: []int{7}},
	0x83: {Description: "Gets and stores the current game time.", Sizes: []int{3}},
	0x84: {Description: "Adjusts the event entities Render.Flags3 value.", Sizes: []int{1}},
	0x85: {Description: "Opens a mog house sub-menu depending on the passed parameter.", Sizes: []int{1}},
	0x86: {Description: "Adjusts the given entities Render.Flags3 value.", Sizes: []int{6}},
	0x87: {Description: "Used for handling the generation of world passes. Sends 0x001B packets to handle the various world pass functionalities.", Sizes: []int{2}},
	0x88: {Description: "Used for handling the generation of world passes. Sends 0x001B packets to handle the various world pass functionalities.", Sizes: []int{2}},
	0x89: {Description: "Opens the desired map (ie. /map), preparing it for usage within the event. (ie. NPCs that mark your map/show you around.)", Sizes: []int{3}},
	0x8A: {Description: "Closes the map window. (ie. after being opened via opcode 0x0089)", Sizes: []int{1}},
	0x8B: {Description: "Sets, or updates, a marker point on the players map. (ie. Used by NPCs that help new players and mark your map.)", Sizes: []int{25}},
	0x8C: {Description: "This handler is used for multiple purposes, related to crafting. (ie. Requesting recipes, synth support, and similar.)", Sizes: []int{2, 8, 10, 12, 14}},
	0x8D: {Description: "Opens the map window with the given properties. This handler is used mainly when an NPC opens your map but it is not with the sub-menus visible. Mainly to show an overview of the map with no extra bloat on screen or markings on the map.", Sizes: []int{5}},
	0x8E: {Description: "Sets the event entities event status to 45 if valid.", Sizes: []int{1}},
	0x8F: {Description: "Sets the event entities event status to 46 if valid.", Sizes: []int{1}},
	0x90: {Description: "Adjusts the event entities Render.Flags0 and Render.Flags1 values.", Sizes: []int{1}},
	0x91: {Description: "Sets the ExtData[1].MainSpeedBase value.", Sizes: []int{3}},
	0x92: {Description: "Adjusts the given entities Render.Flags3 value.", Sizes: []int{6}},
	0x93: {Description: "Appears to display an items information. (Perhaps the same manner with how crafting shows results?)", Sizes: []int{3}},
	0x94: {Description: "Adjusts the given entities Render.Flags3 value.", Sizes: []int{6}},
	0x95: {Description: "Sets the event entity up for being an event based npc. Cleans up the event entities attachments.", Sizes: []int{3}},
	0x96: {Description: "Unsets the event entity from being an event based npc.", Sizes: []int{1}},
	0x97: {Description: "Saves the current zone WindBase and WindWidth values then sets new ones.", Sizes: []int{5}},
	0x98: {Description: "Yields if the zone is loading data, continues otherwise.", Sizes: []int{1}},
	0x99: {Description: "Yields if the given entity is playing an animation, continues otherwise.", Sizes: []int{5}},
	0x9A: {Description: "Yields until the music server is no longer reading data.", Sizes: []int{1}},
	0x9B: {Description: "Yields if the event entity is playing an animation, continues otherwise.", Sizes: []int{1}},
	0x9C: {Description: "Stores the client language id.", Sizes: []int{3}},
	0x9D: {Description: "Handler that has multiple purposes, mainly focused around handling strings.", Sizes: []int{6, 8, 9, 10, 23}},
	0x9E: {Description: "Sets the PTR_RectEventSendFlag value.", Sizes: []int{2}},
	0x9F: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xA0: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xA1: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xA2: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xA3: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xA4: {Description: "Adjusts the event entities Render.Flags3 value.", Sizes: []int{2}},
	0xA5: {Description: "Adjusts the event entities Render.Flags3 value.", Sizes: []int{2}},
	0xA6: {Description: "Requests the event map number from the server by sending a 0x00EB packet. Sets the PTR_RecvEventMapNumFlag to mark the client as awaiting for a response and then yields until it is unset.", Sizes: []int{1, 4}},
	0xA7: {Description: "Waits for the server to respond to a client request. This is used with battlefield registration NPCs. (ie. Dynamis, Moblin Maze Mongers, Salvage, etc.)", Sizes: []int{12, 4}},
	0xA8: {Description: "Opens the map (if requested), unlocks and renames markers.", Sizes: []int{6}},
	0xA9: {Description: "Disables the game time and sets it to a specific given time.", Sizes: []int{3}},
	0xAA: {Description: "Gets a value to be used as a Vana'diel timestamp. Converts that timestamp into the various time parts and stores them.", Sizes: []int{17}},
	0xAB: {Description: "Handles various sub-cases; mostly dealing with altering entity render flags.", Sizes: []int{2, 4, 6}},
	0xAC: {Description: "Handles multiple sub-cases.", Sizes: []int{4, 6, 8}},
	0xAD: {Description: "Handler with multiple sub-cases, used to do various scheduler actions against the two given entities.", Sizes: []int{12}},
	0xAE: {Description: "Handles multiple sub-cases. Doesn't seem to have any specific purpose.", Sizes: []int{6, 8, 10}},
	0xAF: {Description: "Gets and stores the camera position values.", Sizes: []int{8}},
	0xB0: {Description: "Loads and prints an event message to chat. Uses the given entities as the speaker and listener.", Sizes: []int{12}},
	0xB1: {Description: "Gets and stores the value of a flag. PTR_UnknownValue is part of the main app object which is initialized to 128. This valid doesn't seem to ever change, and has been the same since the original beta of the game. At this time, the purpose of this value is unknown.", Sizes: []int{4}},
	0xB2: {Description: "Handler has two modes. The first mode requests opening the delivery box. The second mode is to wait a certain amount of time, used to wait for the delivery box to open.", Sizes: []int{2, 4}},
	0xB3: {Description: "This handler is used for dealing with the rankings boards. For example, the fishing rank boards with Chenon in Selbina.", Sizes: []int{2, 4, 14, 18}},
	0xB4: {Description: "Handler with multiple sub-usages.", Sizes: []int{2, 3, 4, 6, 12, 20}},
	0xB5: {Description: "Sets the current event entities name.", Sizes: []int{4}},
	0xB6: {Description: "Handler with multiple sub-usages. Related to entity looks / gear visuals.", Sizes: []int{2, 4, 6, 14, 16, 20}},
	0xB7: {Description: "Handler with multiple sub-usages.", Sizes: []int{8, 10}},
	0xB8: {Description: "Opens the map (if requested), adds and sets markers.", Sizes: []int{27}},
	0xB9: {Description: "Opens the map (if requested), edits and renames a marker. (Name is taken from the event Read buffer.)", Sizes: []int{8}},
	0xBA: {Description: "Obtains the given entity, if valid, attempts to calibrate its position then calls XiAtelBuff::CopyAllPosEvent and XiAtelBuff::ReqExecHitCheck.", Sizes: []int{13}},
	0xBB: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xBC: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xBD: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xBE: {Description: "Stores the current ReqStack[RunPos].WhoServerId value.", Sizes: []int{3}},
	0xBF: {Description: "Handler that is used for chocobo racing. This handler has debug messages left in, so it can be translated to actual opcode names.", Sizes: []int{8, 10}},
	0xC0: {Description: "Adjusts the event entities Render.Flags3 value.", Sizes: []int{3}},
	0xC1: {Description: "Obtains the given entity, tests it for something. If successful, then the last action is killed and its resp data is deleted.", Sizes: []int{5}},
	0xC2: {Description: "The purpose of this opcode is currently unknown. This makes use of the internal party state object, checking for flags/values. These check if a flag is set that is more recently added to the party structure.", Sizes: []int{2, 4, 6}},
	0xC3: {Description: "Copies a string value into an unknown buffer array.", Sizes: []int{7}},
	0xC4: {Description: "Handler that calls the same helper call as opcode 0x0073, just with a different arguments.", Sizes: []int{11}},
	0xC5: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xC6: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xC7: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xC8: {Description: "Opens the map window with the given parameters.", Sizes: []int{7}},
	0xC9: {Description: "Enables the game timer.", Sizes: []int{1}},
	0xCA: {Description: "Deprecated. No handler exists for this opcode at this time.", Sizes: []int{1}},
	0xCB: {Description: "Deprecated. No handler exists for this opcode at this time.", Sizes: []int{1}},
	0xCC: {Description: "This opcode appears to be used to open and display information windows for various things. Mainly items.", Sizes: []int{4, 6, 10, 14}},
	0xCD: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xCE: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xCF: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xD0: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xD1: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xD2: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xD3: {Description: "Gets the given entity and calls a helper function that clears its motion queue lists.", Sizes: []int{6}},
	0xD4: {Description: "Handles multiple sub-opcodes. These appear to be related to opening the map and querying the user for input.", Sizes: []int{2, 6, 8, 12}},
	0xD5: {Description: "Handler that calls the same helper call as opcode 0x0045, just with a different second argument.", Sizes: []int{17}},
	0xD6: {Description: "Handler that calls the same helper call as opcode 0x0055, just with a different second argument.", Sizes: []int{15}},
	0xD7: {Description: "Handler that calls the same helper call as opcode 0x0052, just with a different second argument.", Sizes: []int{15}},
	0xD8: {Description: "Sets the ExtData[1]->EventDir information for the given entity.", Sizes: []int{6, 8, 12}},
	0xD9: {Description: "Sets an unknown flag value.", Sizes: []int{2}},
}
